package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatheragent.app/internal/config"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)

	return db
}

func newConversation(id, sessionID string, createdAt time.Time) *ports.ConversationData {
	return &ports.ConversationData{
		ID:        id,
		SessionID: sessionID,
		Question:  "Will it rain tomorrow in Casablanca?",
		Answer:    "Light rain is expected.",
		Outcome:   "answered",
		Turns:     3,
		ToolCalls: []ports.ToolCallRecord{
			{CallID: "call_1", Name: "resolve_location", Arguments: `{"name":"Casablanca"}`, Output: `{"latitude":33.59}`},
			{CallID: "call_2", Name: "get_weather_forecast", Arguments: `{}`, Error: "forecast API returned 503", ErrorKind: "UPSTREAM_HTTP_ERROR"},
		},
		CreatedAt: createdAt,
	}
}

func TestConversationRepository_SaveAndFind(t *testing.T) {
	repo := NewConversationRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	conv := newConversation("11111111-1111-1111-1111-111111111111", "s-1", createdAt)
	require.NoError(t, repo.Save(ctx, conv))

	found, err := repo.FindByID(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.SessionID, found.SessionID)
	assert.Equal(t, conv.Question, found.Question)
	assert.Equal(t, conv.Answer, found.Answer)
	assert.Equal(t, 3, found.Turns)
	assert.Equal(t, conv.ToolCalls, found.ToolCalls)
	assert.True(t, createdAt.Equal(found.CreatedAt))
}

func TestConversationRepository_SaveReplaces(t *testing.T) {
	repo := NewConversationRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	conv := newConversation("22222222-2222-2222-2222-222222222222", "s-1", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, conv))

	conv.Answer = "Updated."
	conv.ToolCalls = nil
	require.NoError(t, repo.Save(ctx, conv))

	found, err := repo.FindByID(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated.", found.Answer)
	assert.Empty(t, found.ToolCalls)
	assert.NotNil(t, found.ToolCalls)
}

func TestConversationRepository_FindByID_NotFound(t *testing.T) {
	repo := NewConversationRepositoryAdapter(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "33333333-3333-3333-3333-333333333333")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.FindByID(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestConversationRepository_Save_Validation(t *testing.T) {
	repo := NewConversationRepositoryAdapter(setupTestDB(t))

	assert.True(t, errors.IsValidationError(repo.Save(context.Background(), nil)))
	assert.True(t, errors.IsValidationError(repo.Save(context.Background(), &ports.ConversationData{})))
}

func TestConversationRepository_ListBySession(t *testing.T) {
	repo := NewConversationRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, newConversation("a", "s-1", base)))
	require.NoError(t, repo.Save(ctx, newConversation("b", "s-1", base.Add(time.Minute))))
	require.NoError(t, repo.Save(ctx, newConversation("c", "s-1", base.Add(2*time.Minute))))
	require.NoError(t, repo.Save(ctx, newConversation("d", "s-2", base)))

	conversations, err := repo.ListBySession(ctx, "s-1", 2)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, "c", conversations[0].ID)
	assert.Equal(t, "b", conversations[1].ID)

	conversations, err = repo.ListBySession(ctx, "unknown", 10)
	require.NoError(t, err)
	assert.Empty(t, conversations)

	_, err = repo.ListBySession(ctx, "s-1", 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestConversationRepository_CountByOutcome(t *testing.T) {
	repo := NewConversationRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newConversation("a", "s-1", time.Now().UTC())))
	loop := newConversation("b", "s-1", time.Now().UTC())
	loop.Outcome = "max_turns_exceeded"
	require.NoError(t, repo.Save(ctx, loop))

	count, err := repo.CountByOutcome(ctx, "answered")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountByOutcome(ctx, "model_error")
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.CountByOutcome(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestOpen(t *testing.T) {
	db, err := Open(config.DatabaseConfig{
		Type:       config.DatabaseTypeSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "transcripts.db"),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("conversations"))

	_, err = Open(config.DatabaseConfig{})
	assert.True(t, errors.IsConfigurationError(err))
}
