package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/tinybites/backend/internal/model"
)

// DiaryStore is the GORM implementation of IDiaryStore. Entries are
// append-only: nothing updates a log after creation, deletion is explicit.
type DiaryStore struct {
	db *gorm.DB
}

// NewDiaryStore creates a DiaryStore
func NewDiaryStore(db *gorm.DB) *DiaryStore {
	return &DiaryStore{db: db}
}

// List returns every eating log, newest first
func (s *DiaryStore) List(ctx context.Context) ([]model.EatingLog, error) {
	var logs []model.EatingLog
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list eating logs: %w", err)
	}
	return logs, nil
}

// ListByDate returns the eating logs for one calendar day
func (s *DiaryStore) ListByDate(ctx context.Context, date string) ([]model.EatingLog, error) {
	var logs []model.EatingLog
	if err := s.db.WithContext(ctx).Where("date = ?", date).Order("created_at ASC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list eating logs for %s: %w", date, err)
	}
	return logs, nil
}

// Append persists a new eating log, assigning its ID and creation time
func (s *DiaryStore) Append(ctx context.Context, entry *model.EatingLog) error {
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append eating log: %w", err)
	}
	return nil
}

// Delete removes an eating log by ID. Deleting a missing entry is not an
// error; the end state is the same.
func (s *DiaryStore) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid eating log id %q: %w", id, err)
	}

	if err := s.db.WithContext(ctx).Delete(&model.EatingLog{}, "id = ?", uid).Error; err != nil {
		return fmt.Errorf("failed to delete eating log: %w", err)
	}
	return nil
}
