// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. Records are checked against their static shape before any store
// round-trip, so a missing field is a 400 rather than a driver error.
package validate

import (
	"fmt"
	"strings"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

const msgRequired = "This field is required"

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, msgRequired)
	}
	return v
}

// Present fails if a non-string value was not supplied.
func (v *Validator) Present(field string, supplied bool) *Validator {
	if !supplied {
		v.add(field, msgRequired)
	}
	return v
}

// NotBlank fails if an optional value was supplied but is blank.
// A nil value passes.
func (v *Validator) NotBlank(field string, value *string) *Validator {
	if value != nil && strings.TrimSpace(*value) == "" {
		v.add(field, "Must not be blank")
	}
	return v
}

// EachRequired fails if values is empty or any element is blank.
//
// Element failures are reported as "field[i]".
func (v *Validator) EachRequired(field string, values []string) *Validator {
	if len(values) == 0 {
		v.add(field, "At least one value is required")
		return v
	}
	for i, value := range values {
		if strings.TrimSpace(value) == "" {
			v.add(fmt.Sprintf("%s[%d]", field, i), msgRequired)
		}
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("role", !role.IsValid(), "Must be 1 (user) or 2 (admin)")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method; call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: msgRequired,
	})
}
