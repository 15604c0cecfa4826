// Package memory is the generation log used when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kolhesatish/content-app/internal/content/domain"
)

type GenerationRepository struct {
	mu     sync.RWMutex
	byUser map[string][]domain.GenerationRecord
}

func NewGenerationRepository() *GenerationRepository {
	return &GenerationRepository{byUser: make(map[string][]domain.GenerationRecord)}
}

func (r *GenerationRepository) Insert(_ context.Context, record *domain.GenerationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[record.UserID] = append(r.byUser[record.UserID], *record)
	return nil
}

func (r *GenerationRepository) ListByUser(_ context.Context, userID string, limit int) ([]domain.GenerationRecord, error) {
	r.mu.RLock()
	records := append([]domain.GenerationRecord{}, r.byUser[userID]...)
	r.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
