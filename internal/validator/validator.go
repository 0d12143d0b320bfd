package validator

import (
	"reflect"
	"strings"

	apperrors "github.com/SAP-F-2025/lingua-service/internal/errors"
	"github.com/go-playground/validator/v10"
)

// ValidationErrors is the error Validate returns for failed struct tags.
type ValidationErrors = apperrors.ValidationErrors

// Validator wraps go-playground/validator with the custom rules registered
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate validates struct tags and converts failures to ValidationErrors
func (v *Validator) Validate(s interface{}) error {
	if err := v.ValidateStruct(s); err != nil {
		if errs := apperrors.ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("not_blank", validateNotBlank)

	// Exactly one of selected_index / timed_out on an answer submission
	validate.RegisterValidation("answer_selection", validateAnswerSelection)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// validateAnswerSelection is placed on the timed_out bool and inspects the
// sibling SelectedIndex pointer.
func validateAnswerSelection(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Bool {
		return false
	}
	timedOut := fl.Field().Bool()

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	index := parent.FieldByName("SelectedIndex")
	if !index.IsValid() || index.Kind() != reflect.Ptr {
		return false
	}
	return timedOut == index.IsNil()
}
