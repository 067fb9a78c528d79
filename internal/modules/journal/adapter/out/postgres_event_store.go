package out

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"healthtrack/internal/modules/journal/domain"
	journalout "healthtrack/internal/modules/journal/port/out"
	apperrors "healthtrack/internal/platform/errors"
)

// EventRecord is the gorm model behind PostgresEventStore.
type EventRecord struct {
	ID         string    `gorm:"primaryKey"`
	Kind       string    `gorm:"index:idx_event_kind_time,priority:1;not null"`
	OccurredAt time.Time `gorm:"index:idx_event_kind_time,priority:2;index;not null"`
	Payload    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (EventRecord) TableName() string { return "journal_events" }

type PostgresEventStore struct {
	db *gorm.DB
}

func NewPostgresEventStore(dsn string) (journalout.EventStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&EventRecord{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("migrate journal events: %w", err)
	}
	return &PostgresEventStore{db: db}, nil
}

func (s *PostgresEventStore) Append(ctx context.Context, event domain.Event) error {
	payload, err := encodeEvent(event)
	if err != nil {
		return err
	}
	record := EventRecord{
		ID:         event.ID,
		Kind:       string(event.Kind),
		OccurredAt: event.Timestamp.UTC(),
		Payload:    payload,
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if res.Error != nil {
		return fmt.Errorf("insert event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.Conflict("event %q already recorded", event.ID)
	}
	return nil
}

func (s *PostgresEventStore) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	var records []EventRecord
	err := s.db.WithContext(ctx).
		Where("occurred_at >= ? AND occurred_at < ?", from.UTC(), to.UTC()).
		Order("occurred_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	out := make([]domain.Event, 0, len(records))
	for _, record := range records {
		event, err := decodeEvent(record.Payload)
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, nil
}

func (s *PostgresEventStore) Latest(ctx context.Context, kind domain.Kind) (domain.Event, bool, error) {
	var record EventRecord
	err := s.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("occurred_at DESC, id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Event{}, false, nil
	}
	if err != nil {
		return domain.Event{}, false, fmt.Errorf("query latest %s event: %w", kind, err)
	}
	event, err := decodeEvent(record.Payload)
	if err != nil {
		return domain.Event{}, false, err
	}
	return event, true, nil
}

func (s *PostgresEventStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
