package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"healthtrack/internal/modules/profile/domain"
	profileout "healthtrack/internal/modules/profile/port/out"
)

type YAMLProfileStore struct {
	path string
}

func NewYAMLProfileStore(path string) profileout.ProfileStore {
	return &YAMLProfileStore{path: path}
}

func (s *YAMLProfileStore) Load(_ context.Context) (domain.Profile, bool, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Profile{}, false, nil
		}
		return domain.Profile{}, false, fmt.Errorf("read profile: %w", err)
	}
	profile := domain.Profile{}
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return domain.Profile{}, false, fmt.Errorf("decode profile: %w", err)
	}
	return profile, true, nil
}

func (s *YAMLProfileStore) Save(_ context.Context, profile domain.Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	raw, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
