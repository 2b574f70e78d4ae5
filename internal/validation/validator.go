// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

// Package validation provides struct validation using go-playground/validator
// v10 through a thread-safe singleton instance, with a custom validator for
// season years and error translation to the API error format.
//
// Example:
//
//	type filterParams struct {
//	    Years []int  `validate:"omitempty,dive,season"`
//	    Limit int    `validate:"min=1,max=100"`
//	}
//	if verr := validation.ValidateStruct(&params); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Season years accepted by the "season" validation tag. The lower bound is
// the first world championship season; the upper bound leaves headroom for
// future data exports.
const (
	minSeasonYear = 1950
	maxSeasonYear = 2100
)

// ValidationError is a single field validation failure.
type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the struct field that failed validation.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string { return e.tag }

// Error returns a human-readable message.
func (e *ValidationError) Error() string { return e.message }

// RequestValidationError is a collection of validation failures for one
// request struct.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual validation failures.
func (ve *RequestValidationError) Errors() []ValidationError { return ve.errors }

// Error implements the error interface.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// APIError mirrors models.APIError to avoid an import cycle.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the validation failures to the API error format.
func (ve *RequestValidationError) ToAPIError() *APIError {
	if len(ve.errors) == 0 {
		return &APIError{Code: "VALIDATION_ERROR", Message: "Validation failed"}
	}

	if len(ve.errors) == 1 {
		e := ve.errors[0]
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: e.message,
			Details: map[string]interface{}{"field": e.field, "constraint": e.tag},
		}
	}

	fields := make([]string, 0, len(ve.errors))
	for _, e := range ve.errors {
		fields = append(fields, e.field)
	}
	return &APIError{
		Code:    "VALIDATION_ERROR",
		Message: ve.Error(),
		Details: map[string]interface{}{"fields": fields},
	}
}

// getValidator returns the singleton validator, creating it on first use.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// season: an integer within the plausible championship year range
		_ = validate.RegisterValidation("season", func(fl validator.FieldLevel) bool {
			year := fl.Field().Int()
			return year >= minSeasonYear && year <= maxSeasonYear
		})

		// country: a non-blank country name of sane length
		_ = validate.RegisterValidation("country", func(fl validator.FieldLevel) bool {
			s := strings.TrimSpace(fl.Field().String())
			return s != "" && len(s) <= 100
		})
	})
	return validate
}

// ValidateStruct validates a struct and returns nil on success or a
// *RequestValidationError describing every failed field.
func ValidateStruct(v interface{}) *RequestValidationError {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return &RequestValidationError{errors: []ValidationError{{
			field:   "struct",
			tag:     "invalid",
			message: "invalid value passed to validation",
		}}}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{errors: []ValidationError{{
			field:   "struct",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	ve := &RequestValidationError{}
	for _, fe := range fieldErrs {
		ve.errors = append(ve.errors, ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: messageFor(fe),
		})
	}
	return ve
}

// messageFor builds a human-readable message for a field error.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "season":
		return fmt.Sprintf("%s must be a season year between %d and %d", fe.Field(), minSeasonYear, maxSeasonYear)
	case "country":
		return fmt.Sprintf("%s must be a non-empty country name", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on %s", fe.Field(), fe.Tag())
	}
}
