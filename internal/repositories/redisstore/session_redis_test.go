package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server when TEST_REDIS_URL is set.
func TestSessionRedis(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	defer client.Close()

	ctx := context.Background()
	store := NewSessionRedis(client)

	session, err := quiz.NewSession(uuid.NewString(), []quiz.Question{{
		ID: "pt_1", ItemID: "1", Prompt: "cat", Options: []string{"قطة", "كلب"},
	}}, time.Now())
	require.NoError(t, err)
	rec := &repositories.QuizSessionRecord{Session: session, Source: "keywords"}
	defer store.Delete(ctx, session.ID)

	require.NoError(t, store.Save(ctx, rec, time.Minute))

	stale, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Questions, stale.Session.Questions)

	require.NoError(t, store.Save(ctx, rec, time.Minute))
	assert.EqualValues(t, 2, rec.Version)
	assert.ErrorIs(t, store.Save(ctx, stale, time.Minute), repositories.ErrVersionConflict)

	require.NoError(t, store.Delete(ctx, session.ID))
	_, err = store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
