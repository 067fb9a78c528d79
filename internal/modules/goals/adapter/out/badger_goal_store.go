package out

import (
	"context"
	"fmt"

	"healthtrack/internal/platform/kv"
)

const collectionKey = "goals/collection"

// BadgerGoalStore keeps the serialized goal collection under a single key.
type BadgerGoalStore struct {
	db *kv.DB
}

func NewBadgerGoalStore(db *kv.DB) *BadgerGoalStore {
	return &BadgerGoalStore{db: db}
}

func (s *BadgerGoalStore) Load(_ context.Context) ([]byte, bool, error) {
	blob, found, err := s.db.Get(collectionKey)
	if err != nil {
		return nil, false, fmt.Errorf("read goal collection: %w", err)
	}
	return blob, found, nil
}

func (s *BadgerGoalStore) Save(_ context.Context, blob []byte) error {
	if err := s.db.Put(collectionKey, blob); err != nil {
		return fmt.Errorf("write goal collection: %w", err)
	}
	return nil
}
