package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/SAP-F-2025/lingua-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newImportExportFixture(t *testing.T) (ImportExportService, *quizFixture) {
	t.Helper()
	f := newQuizFixture(t)
	return NewImportExportService(f.service, f.sessions, validator.New(), testLogger("import_export")), f
}

func TestImportExportService_ImportCSV(t *testing.T) {
	s, _ := newImportExportFixture(t)

	csv := "Word, Translation ,Example\n" +
		"Hello,مرحبا,Hello there\n" +
		",,\n" +
		"Goodbye,,\n" +
		"  Thanks  ,شكرا\n"

	result, err := s.ImportWordList(context.Background(), strings.NewReader(csv), "words.CSV")
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 4, result.Errors[0].Row)
	assert.Equal(t, colTranslation, result.Errors[0].Column)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "row-2", result.Items[0].ID)
	assert.Equal(t, "Hello there", result.Items[0].Example)
	assert.Equal(t, "row-5", result.Items[1].ID)
	assert.Equal(t, "Thanks", result.Items[1].Primary)
}

func TestImportExportService_ImportErrors(t *testing.T) {
	s, _ := newImportExportFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		body     string
		filename string
	}{
		{"unsupported extension", "word,translation\nHello,مرحبا\n", "words.txt"},
		{"header only", "word,translation\n", "words.csv"},
		{"missing translation column", "word,meaning\nHello,مرحبا\n", "words.csv"},
		{"malformed csv", "word,translation\nHe\"llo,x\n", "words.csv"},
		{"not a workbook", "plain text", "words.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ImportWordList(ctx, strings.NewReader(tt.body), tt.filename)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "got %v", err)
		})
	}
}

func TestImportExportService_ImportExcel(t *testing.T) {
	s, _ := newImportExportFixture(t)

	book := excelize.NewFile()
	rows := [][]string{
		{"translation", "word", "pronunciation"},
		{"أم", "Mother", "/ˈmʌðər/"},
		{"أب", "Father", ""},
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, book.SetCellValue("Sheet1", cell, value))
		}
	}
	buf, err := book.WriteToBuffer()
	require.NoError(t, err)

	result, err := s.ImportWordList(context.Background(), buf, "family.xlsx")
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Mother", result.Items[0].Primary)
	assert.Equal(t, "أم", result.Items[0].Translation)
	assert.Equal(t, "/ˈmʌðər/", result.Items[0].Pronunciation)
}

func TestImportExportService_ImportSession(t *testing.T) {
	s, f := newImportExportFixture(t)
	ctx := context.Background()

	csv := "word,translation\nHello,مرحبا\nGoodbye,مع السلامة\nThanks,\n"
	imported, err := s.ImportSession(ctx, strings.NewReader(csv), "uploads/greetings.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, imported.Import.ErrorCount)
	assert.Equal(t, "import:greetings.csv", imported.Session.Source)
	assert.Equal(t, 4, imported.Session.TotalQuestions)

	stored, err := f.sessions.Get(ctx, imported.Session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Pool, 2)

	_, err = s.ImportSession(ctx, strings.NewReader("word,translation\nHello,مرحبا\n"), "one.csv")
	assert.ErrorIs(t, err, quiz.ErrNoQuestions)

	_, err = s.ImportSession(ctx, strings.NewReader("word,translation\nHello,\nBye,\n"), "broken.csv")
	assert.True(t, IsBusinessRule(err), "got %v", err)
}

func TestImportExportService_ExportSessionResult(t *testing.T) {
	s, f := newImportExportFixture(t)
	ctx := context.Background()

	view, err := f.service.CreateSession(ctx, &CreateSessionRequest{KeywordIDs: []uint{7, 8}})
	require.NoError(t, err)

	_, err = s.ExportSessionResult(ctx, view.ID)
	assert.ErrorIs(t, err, quiz.ErrSessionNotCompleted)
	assert.True(t, IsConflict(err))

	_, err = f.service.StartSession(ctx, view.ID)
	require.NoError(t, err)
	for i := 0; i < view.TotalQuestions; i++ {
		_, err := f.service.SubmitAnswer(ctx, view.ID, &SubmitAnswerRequest{
			SelectedIndex: intPtr(f.correctIndex(t, view.ID)),
			TimeRemaining: intPtr(25),
		})
		require.NoError(t, err)
	}

	data, err := s.ExportSessionResult(ctx, view.ID)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{"Summary", "Answers"}, book.GetSheetList())

	total, err := book.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "4", total)

	grade, err := book.GetCellValue("Summary", "B7")
	require.NoError(t, err)
	assert.Equal(t, string(quiz.GradeAPlus), grade)

	answers, err := book.GetRows("Answers")
	require.NoError(t, err)
	require.Len(t, answers, 5)
	assert.Equal(t, "Prompt", answers[0][1])
	for _, row := range answers[1:] {
		assert.Equal(t, row[4], row[3])
		assert.Equal(t, "correct", row[5])
		assert.Equal(t, "5", row[6])
	}

	_, err = s.ExportSessionResult(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
