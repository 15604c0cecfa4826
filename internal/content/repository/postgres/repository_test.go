package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kolhesatish/content-app/internal/content/domain"
	repo "github.com/kolhesatish/content-app/internal/content/repository/postgres"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "user_id", "platform", "content_type", "topic", "generated_content", "created_at"}

func TestInsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewGenerationRepository(mock)
	ctx := context.Background()
	now := time.Now().UTC()

	rec := &domain.GenerationRecord{
		ID:        "gen-1",
		UserID:    "user-1",
		Platform:  domain.PlatformLinkedIn,
		Topic:     "hiring",
		Content:   domain.Result{Variations: []domain.Variation{{Caption: "hi", Hashtags: []string{"#a"}, Tag: "professional"}}},
		CreatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		var noContentType *string
		mock.ExpectExec("INSERT INTO content_generations").
			WithArgs("gen-1", "user-1", "linkedin", noContentType, "hiring",
				[]byte(`{"variations":[{"caption":"hi","hashtags":["#a"],"tag":"professional"}]}`), now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, r.Insert(ctx, rec))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO content_generations").
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Insert(ctx, rec))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewGenerationRepository(mock)
	ctx := context.Background()
	newer := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	post := "post"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id.*FROM content_generations.*ORDER BY created_at DESC`).
			WithArgs("user-1", 20).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("gen-2", "user-1", "instagram", &post, "coffee", []byte(`{"variations":[{"caption":"c","hashtags":[],"tag":"post"}]}`), newer).
				AddRow("gen-1", "user-1", "linkedin", (*string)(nil), "hiring", []byte(`{"variations":[]}`), older))

		records, err := r.ListByUser(ctx, "user-1", 20)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "gen-2", records[0].ID)
		assert.Equal(t, domain.PlatformInstagram, records[0].Platform)
		assert.Equal(t, "post", records[0].ContentType)
		assert.Equal(t, "c", records[0].Content.Variations[0].Caption)

		assert.Equal(t, domain.PlatformLinkedIn, records[1].Platform)
		assert.Empty(t, records[1].ContentType)
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id`).
			WithArgs("user-2", 20).
			WillReturnRows(pgxmock.NewRows(columns))

		records, err := r.ListByUser(ctx, "user-2", 20)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("corrupt content", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id`).
			WithArgs("user-3", 20).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("gen-9", "user-3", "linkedin", (*string)(nil), "x", []byte(`not json`), newer))

		_, err := r.ListByUser(ctx, "user-3", 20)
		assert.Error(t, err)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id`).
			WithArgs("user-4", 20).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.ListByUser(ctx, "user-4", 20)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
