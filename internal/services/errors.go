package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/lingua-service/internal/errors"
	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Content errors
	ErrCourseNotFound    = errors.New("course not found")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrParagraphNotFound = errors.New("paragraph not found")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrParagraphNoQuiz   = errors.New("paragraph has no quiz")
	ErrEmptySearchQuery  = errors.New("search query is required")

	// Quiz session errors
	ErrSessionNotFound = errors.New("quiz session not found")

	// Import/export errors
	ErrUnsupportedFileFormat = errors.New("unsupported file format")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

// notFound maps a repository miss to the given service error.
func notFound(err error, target error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return target
	}
	return err
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrLessonNotFound) ||
		errors.Is(err, ErrParagraphNotFound) ||
		errors.Is(err, ErrExerciseNotFound) ||
		errors.Is(err, ErrParagraphNoQuiz) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, repositories.ErrNotFound)
}

// IsValidation checks if error represents a validation failure, including
// quiz engine contract violations
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrEmptySearchQuery) ||
		errors.Is(err, ErrUnsupportedFileFormat) ||
		quiz.IsInvalidInput(err) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}

// IsConflict checks if error represents a resource or state conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, repositories.ErrVersionConflict) ||
		quiz.IsStateConflict(err)
}
