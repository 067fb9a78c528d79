package out

import (
	"context"
	"time"

	"healthtrack/internal/modules/journal/domain"
)

type EventStore interface {
	// Append stores a new event. An id that is already stored yields a
	// conflict error and leaves the stored event untouched.
	Append(ctx context.Context, event domain.Event) error
	// ListBetween returns events with from <= timestamp < to, oldest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	// Latest reports found=false when no event of kind exists.
	Latest(ctx context.Context, kind domain.Kind) (domain.Event, bool, error)
	Close() error
}
