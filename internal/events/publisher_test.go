package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatermillEventPublisher_Publish(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	defer pubSub.Close()

	publisher := NewWatermillEventPublisher(pubSub, "learning-events", discardLogger())

	result := quiz.Result{TotalQuestions: 4, CorrectAnswers: 3, Percentage: 75, Grade: quiz.GradeB, Passed: true}
	event := NewQuizCompletedEvent("s-1", "lesson:1", result, time.Now())
	require.NoError(t, publisher.Publish(context.Background(), event))

	messages, err := pubSub.Subscribe(context.Background(), "learning-events")
	require.NoError(t, err)

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, string(EventQuizCompleted), msg.Metadata.Get("event_type"))
		assert.Equal(t, eventSource, msg.Metadata.Get("source"))

		var decoded struct {
			Type EventType          `json:"type"`
			Data QuizCompletedEvent `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
		assert.Equal(t, EventQuizCompleted, decoded.Type)
		assert.Equal(t, "s-1", decoded.Data.SessionID)
		assert.Equal(t, quiz.GradeB, decoded.Data.Result.Grade)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestMockEventPublisher(t *testing.T) {
	m := NewMockEventPublisher(discardLogger())

	require.NoError(t, m.Publish(context.Background(), NewWritingCheckedEvent(1, 2, false, true, 0.9)))
	require.NoError(t, m.Publish(context.Background(), NewQuizStartedEvent("s-1", "paragraph:3", 6, time.Now())))

	got := m.GetPublishedEvents()
	require.Len(t, got, 2)
	assert.Equal(t, EventWritingChecked, got[0].Type)
	assert.Equal(t, EventQuizStarted, got[1].Type)
	assert.NotEqual(t, got[0].ID, got[1].ID)

	m.ClearEvents()
	assert.Empty(t, m.GetPublishedEvents())
}
