package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/SAP-F-2025/lingua-service/internal/errors"
	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/SAP-F-2025/lingua-service/internal/validator"
	"github.com/xuri/excelize/v2"
)

const (
	colWord               = "word"
	colTranslation        = "translation"
	colPronunciation      = "pronunciation"
	colExample            = "example"
	colExampleTranslation = "example_translation"
)

// ImportExportService moves vocabulary lists and quiz results in and out of
// spreadsheet files.
type ImportExportService interface {
	// Import operations
	ImportWordList(ctx context.Context, r io.Reader, filename string) (*WordListImport, error)
	ImportWordListFromCSV(ctx context.Context, r io.Reader) (*WordListImport, error)
	ImportWordListFromExcel(ctx context.Context, r io.Reader) (*WordListImport, error)
	ImportSession(ctx context.Context, r io.Reader, filename string) (*ImportedSession, error)

	// Export operations
	ExportSessionResult(ctx context.Context, sessionID string) ([]byte, error)
}

type WordListImport struct {
	TotalRows    int                            `json:"total_rows"`
	SuccessCount int                            `json:"success_count"`
	ErrorCount   int                            `json:"error_count"`
	Errors       []models.ImportValidationError `json:"errors"`
	Items        []models.VocabularyItem        `json:"items,omitempty"`
}

type ImportedSession struct {
	Import  *WordListImport `json:"import"`
	Session *SessionView    `json:"session"`
}

type importExportService struct {
	quiz      QuizService
	sessions  repositories.SessionRepository
	validator *validator.Validator
	logger    *ServiceLogger
}

func NewImportExportService(quizService QuizService, sessions repositories.SessionRepository, validator *validator.Validator, logger *ServiceLogger) ImportExportService {
	return &importExportService{
		quiz:      quizService,
		sessions:  sessions,
		validator: validator,
		logger:    logger,
	}
}

// ===== IMPORT OPERATIONS =====

func (s *importExportService) ImportWordList(ctx context.Context, r io.Reader, filename string) (*WordListImport, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return s.ImportWordListFromCSV(ctx, r)
	case ".xlsx":
		return s.ImportWordListFromExcel(ctx, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ext)
	}
}

func (s *importExportService) ImportWordListFromCSV(ctx context.Context, r io.Reader) (*WordListImport, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, NewValidationError("file", fmt.Sprintf("malformed CSV: %v", err), nil)
	}
	return s.parseRows(records)
}

func (s *importExportService) ImportWordListFromExcel(ctx context.Context, r io.Reader) (*WordListImport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewValidationError("file", fmt.Sprintf("unreadable Excel file: %v", err), nil)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewValidationError("file", "workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return s.parseRows(rows)
}

func (s *importExportService) parseRows(rows [][]string) (*WordListImport, error) {
	if len(rows) < 2 {
		return nil, NewValidationError("file", "file must have a header row and at least one data row", len(rows))
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, col := range []string{colWord, colTranslation} {
		if _, exists := headerMap[col]; !exists {
			return nil, NewValidationError("headers", fmt.Sprintf("missing required column: %s", col), col)
		}
	}

	result := &WordListImport{
		TotalRows: len(rows) - 1,
		Errors:    []models.ImportValidationError{},
	}

	for i, row := range rows[1:] {
		rowNum := i + 2
		cell := func(col string) string {
			idx, ok := headerMap[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		item := models.VocabularyItem{
			ID:                 "row-" + strconv.Itoa(rowNum),
			Primary:            cell(colWord),
			Translation:        cell(colTranslation),
			Pronunciation:      cell(colPronunciation),
			Example:            cell(colExample),
			ExampleTranslation: cell(colExampleTranslation),
		}
		if item.Primary == "" && item.Translation == "" {
			result.TotalRows--
			continue
		}

		if err := s.validator.ValidateStruct(item); err != nil {
			for _, fe := range apperrors.ToValidationErrors(err) {
				column := colWord
				if fe.Field == "translation" {
					column = colTranslation
				}
				result.Errors = append(result.Errors, models.ImportValidationError{
					Row:     rowNum,
					Column:  column,
					Message: fe.Message,
					Value:   cell(column),
					Code:    fe.Rule,
				})
			}
			result.ErrorCount++
			continue
		}

		result.Items = append(result.Items, item)
		result.SuccessCount++
	}

	return result, nil
}

// ImportSession turns an uploaded word list into a new quiz session. Rows
// with errors are skipped and reported.
func (s *importExportService) ImportSession(ctx context.Context, r io.Reader, filename string) (imported *ImportedSession, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "import_session", "word_list", filename, started, err) }()

	wordList, err := s.ImportWordList(ctx, r, filename)
	if err != nil {
		return nil, err
	}
	if wordList.SuccessCount == 0 {
		return nil, NewBusinessRuleError("word_list_has_valid_rows", "word list has no valid rows", map[string]interface{}{
			"total_rows":  wordList.TotalRows,
			"error_count": wordList.ErrorCount,
		})
	}

	view, err := s.quiz.CreateSessionFromPool(ctx, "import:"+filepath.Base(filename), wordList.Items)
	if err != nil {
		return nil, err
	}
	return &ImportedSession{Import: wordList, Session: view}, nil
}

// ===== EXPORT OPERATIONS =====

func (s *importExportService) ExportSessionResult(ctx context.Context, sessionID string) (data []byte, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "export_session_result", "quiz_session", sessionID, started, err) }()

	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, ErrSessionNotFound)
	}
	result, err := record.Session.FinalResult()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	summaryRows := [][]interface{}{
		{"Session", record.Session.ID},
		{"Source", record.Source},
		{"Total Questions", result.TotalQuestions},
		{"Correct Answers", result.CorrectAnswers},
		{"Wrong Answers", result.WrongAnswers},
		{"Percentage", result.Percentage},
		{"Grade", string(result.Grade)},
		{"Average Time (s)", result.AverageTime},
		{"Passed", result.Passed},
	}
	if err := writeRows(f, summary, summaryRows); err != nil {
		return nil, err
	}

	answersSheet := "Answers"
	index, err := f.NewSheet(answersSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	questions := make(map[string]quiz.Question, len(record.Session.Questions))
	for _, q := range record.Session.Questions {
		questions[q.ID] = q
	}

	answerRows := [][]interface{}{
		{"#", "Prompt", "Direction", "Selected", "Correct Answer", "Result", "Time Taken (s)"},
	}
	for i, a := range result.Answers {
		q := questions[a.QuestionID]
		selected := "(timed out)"
		if idx, answered := a.Selection().Index(); answered && idx < len(q.Options) {
			selected = q.Options[idx]
		}
		outcome := "wrong"
		if a.IsCorrect {
			outcome = "correct"
		}
		correct := ""
		if q.CorrectIndex < len(q.Options) {
			correct = q.CorrectAnswer()
		}
		answerRows = append(answerRows, []interface{}{
			i + 1, q.Prompt, string(q.Direction), selected, correct, outcome, a.TimeTaken,
		})
	}
	if err := writeRows(f, answersSheet, answerRows); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
