// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/validate"
	"github.com/taibuivan/yomira-cms/pkg/pointer"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "One Piece", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_NotBlank checks optional fields used by partial updates.
*/
func TestValidator_NotBlank(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		hasError bool
	}{
		{"absent", nil, false},
		{"present", pointer.To("new title"), false},
		{"blank", pointer.To("  "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.NotBlank("title", tt.value)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_EachRequired checks list fields such as comic images.
*/
func TestValidator_EachRequired(t *testing.T) {
	t.Run("empty_list", func(t *testing.T) {
		v := &validate.Validator{}
		v.EachRequired("images", nil)

		ae := apperr.As(v.Err())
		require.NotNil(t, ae)
		assert.Equal(t, "images", ae.Details[0].Field)
	})

	t.Run("blank_element", func(t *testing.T) {
		v := &validate.Validator{}
		v.EachRequired("images", []string{"a.png", ""})

		ae := apperr.As(v.Err())
		require.NotNil(t, ae)
		assert.Equal(t, "images[1]", ae.Details[0].Field)
	})

	t.Run("all_present", func(t *testing.T) {
		v := &validate.Validator{}
		v.EachRequired("images", []string{"a.png", "b.png"})
		assert.NoError(t, v.Err())
	})
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").              // Fails
		Present("year", false).                // Fails
		Custom("role", true, "Invalid role").  // Fails
		Required("email", "reader@yomira.app"). // Passes
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
