// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	notFound := apperr.NotFound("Comic")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"pgx_no_rows", pgx.ErrNoRows, notFound},
		{"mongo_no_documents", mongo.ErrNoDocuments, notFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), notFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dberr.Wrap(tt.err, "find_comic", notFound))
		})
	}

	t.Run("other_errors_keep_cause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := dberr.Wrap(cause, "insert_user", notFound)

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "insert_user")
		assert.False(t, apperr.IsAppError(err))
	})
}
