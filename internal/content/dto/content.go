package dto

import (
	"time"

	"github.com/kolhesatish/content-app/internal/content/domain"
)

type InstagramInput struct {
	Topic       string         `json:"topic"`
	ContentType string         `json:"contentType"`
	Options     domain.Options `json:"options"`
}

type LinkedInInput struct {
	Topic   string         `json:"topic"`
	Style   string         `json:"style"`
	Options domain.Options `json:"options"`
}

type GenerateResponse struct {
	Success          bool            `json:"success"`
	Content          domain.Result   `json:"content"`
	Platform         domain.Platform `json:"platform"`
	ContentType      string          `json:"contentType"`
	Style            string          `json:"style,omitempty"`
	Topic            string          `json:"topic"`
	CreditsRemaining int             `json:"creditsRemaining"`
}

type HistoryItem struct {
	ID          string          `json:"id"`
	Platform    domain.Platform `json:"platform"`
	ContentType string          `json:"contentType,omitempty"`
	Topic       string          `json:"topic"`
	Content     domain.Result   `json:"content"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

func NewHistoryResponse(records []domain.GenerationRecord) HistoryResponse {
	items := make([]HistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, HistoryItem{
			ID:          r.ID,
			Platform:    r.Platform,
			ContentType: r.ContentType,
			Topic:       r.Topic,
			Content:     r.Content,
			CreatedAt:   r.CreatedAt,
		})
	}
	return HistoryResponse{Items: items}
}
