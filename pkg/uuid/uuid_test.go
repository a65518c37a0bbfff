// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-cms/pkg/uuid"
)

func TestNew_IsValidAndOrdered(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	assert.True(t, uuid.IsValid(first))
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first[:8], second[:8])
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0190a5c3-7b2e-7c1a-9f3d-2b4c6d8e0f12", true},
		{"64b7f0c2e1a3b4c5d6e7f809", false},
		{"not-a-uuid", false},
		{"", false},
		{"urn:uuid:0190a5c3-7b2e-7c1a-9f3d-2b4c6d8e0f12", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, uuid.IsValid(tt.in))
		})
	}
}
