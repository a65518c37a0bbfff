// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/yomira-cms/internal/platform/database/schema"
	"github.com/taibuivan/yomira-cms/internal/platform/dberr"
	"github.com/taibuivan/yomira-cms/pkg/uuid"
)

// PostgresRepository implements [Repository] on social.comment.
// The table has no foreign keys; dangling references are allowed.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed comment store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var commentColumns = strings.Join(schema.SocialComment.Columns(), ", ")

// List returns the comments matching filter, oldest first.
func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Comment, error) {
	if !uuid.IsValid(filter.ComicID) || (filter.UserID != "" && !uuid.IsValid(filter.UserID)) {
		return []*Comment{}, nil
	}

	table := schema.SocialComment

	var queryBuilder strings.Builder
	args := []any{filter.ComicID}

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, commentColumns, table.Table, table.ComicID))

	if filter.UserID != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND %s = $2`, table.UserID))
		args = append(args, filter.UserID)
	}

	queryBuilder.WriteString(fmt.Sprintf(` ORDER BY %s, %s`, table.CreatedAt, table.ID))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Comment, error) {
		return scanComment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan comments: %w", err)
	}

	if comments == nil {
		comments = []*Comment{}
	}
	return comments, nil
}

// Create inserts a comment under a fresh UUIDv7.
func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	comment.ID = uuid.New()

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)`,
		schema.SocialComment.Table, commentColumns)

	_, err := repository.pool.Exec(context, query,
		comment.ID, comment.ComicID, comment.UserID, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// UpdateContent rewrites the content column only.
func (repository *PostgresRepository) UpdateContent(context context.Context, id, content string) (*Comment, error) {
	if !uuid.IsValid(id) {
		return nil, ErrNotFound
	}

	table := schema.SocialComment
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 RETURNING %s`,
		table.Table, table.Content, table.ID, commentColumns)

	comment, err := scanComment(repository.pool.QueryRow(context, query, id, content))
	if err != nil {
		return nil, dberr.Wrap(err, "update comment", ErrNotFound)
	}
	return comment, nil
}

// Delete removes the comment row.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	if !uuid.IsValid(id) {
		return ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SocialComment.Table, schema.SocialComment.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*Comment, error) {
	var comment Comment
	err := row.Scan(&comment.ID, &comment.ComicID, &comment.UserID, &comment.Content, &comment.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
