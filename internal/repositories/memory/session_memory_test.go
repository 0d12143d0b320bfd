package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, now time.Time) *repositories.QuizSessionRecord {
	t.Helper()
	questions := []quiz.Question{{
		ID: "pt_1", ItemID: "1", Direction: quiz.PrimaryToTranslation,
		Prompt: "cat", Options: []string{"قطة", "كلب"}, CorrectIndex: 0,
	}}
	session, err := quiz.NewSession("s-1", questions, now)
	require.NoError(t, err)
	return &repositories.QuizSessionRecord{
		Session: session,
		Pool:    []models.VocabularyItem{{ID: "1", Primary: "cat", Translation: "قطة"}},
		Source:  "paragraph:1",
	}
}

func TestSessionStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	rec := newRecord(t, time.Now())

	require.NoError(t, store.Save(ctx, rec, time.Minute))
	assert.EqualValues(t, 1, rec.Version)

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "paragraph:1", got.Source)
	assert.Equal(t, quiz.StatusNotStarted, got.Session.Status)
	assert.Equal(t, rec.Session.Questions, got.Session.Questions)
	assert.EqualValues(t, 1, got.Version)

	// The stored copy is detached from the caller's value.
	rec.Source = "changed"
	again, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "paragraph:1", again.Source)
}

func TestSessionStore_VersionConflict(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	require.NoError(t, store.Save(ctx, newRecord(t, time.Now()), time.Minute))

	first, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	second, err := store.Get(ctx, "s-1")
	require.NoError(t, err)

	require.NoError(t, first.Session.Start(time.Now()))
	require.NoError(t, store.Save(ctx, first, time.Minute))

	require.NoError(t, second.Session.Start(time.Now()))
	assert.ErrorIs(t, store.Save(ctx, second, time.Minute), repositories.ErrVersionConflict)

	// A brand-new record with the same id conflicts too.
	assert.ErrorIs(t, store.Save(ctx, newRecord(t, time.Now()), time.Minute), repositories.ErrVersionConflict)
}

func TestSessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStoreWithClock(func() time.Time { return now })

	require.NoError(t, store.Save(ctx, newRecord(t, now), time.Minute))

	now = now.Add(59 * time.Second)
	_, err := store.Get(ctx, "s-1")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	require.NoError(t, store.Save(ctx, newRecord(t, time.Now()), time.Minute))

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err := store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
