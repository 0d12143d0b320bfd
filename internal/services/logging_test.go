package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLogger_LogOperationLevels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		level  string
		status string
	}{
		{"success", nil, "INFO", "success"},
		{"not found", ErrParagraphNotFound, "WARN", "not_found"},
		{"validation", quiz.ErrNoAnswers, "WARN", "validation_error"},
		{"conflict", quiz.ErrSessionCompleted, "WARN", "conflict"},
		{"unexpected", errors.New("disk full"), "ERROR", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewServiceLogger(slog.New(slog.NewJSONHandler(&buf, nil)), "quiz")

			logger.LogOperation(context.Background(), "submit_paragraph_quiz", "paragraph", "9", time.Now(), tt.err)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.status, entry["status"])
			assert.Equal(t, "quiz", entry["service"])
		})
	}
}
