package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kolhesatish/content-app/db"
	"github.com/kolhesatish/content-app/internal/content/domain"
)

type GenerationRepository struct {
	db db.Pool
}

func NewGenerationRepository(pool db.Pool) *GenerationRepository {
	return &GenerationRepository{db: pool}
}

func (r *GenerationRepository) Insert(ctx context.Context, record *domain.GenerationRecord) error {
	content, err := json.Marshal(record.Content)
	if err != nil {
		return fmt.Errorf("failed to encode generated content: %w", err)
	}

	var contentType *string
	if record.ContentType != "" {
		contentType = &record.ContentType
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO content_generations (id, user_id, platform, content_type, topic, generated_content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, record.ID, record.UserID, string(record.Platform), contentType, record.Topic, content, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert generation: %w", err)
	}
	return nil
}

// ListByUser returns the user's most recent generations, newest first.
func (r *GenerationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.GenerationRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, platform, content_type, topic, generated_content, created_at
		FROM content_generations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	records := []domain.GenerationRecord{}
	for rows.Next() {
		var (
			rec         domain.GenerationRecord
			platform    string
			contentType *string
			content     []byte
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &platform, &contentType, &rec.Topic, &content, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}

		rec.Platform = domain.Platform(platform)
		if contentType != nil {
			rec.ContentType = *contentType
		}
		if err := json.Unmarshal(content, &rec.Content); err != nil {
			return nil, fmt.Errorf("failed to decode generation %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	return records, nil
}
