// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

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

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed comic store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

var comicColumns = strings.Join(schema.CoreComic.Columns(), ", ")

// List returns all comics ordered by id, which is creation order for UUIDv7.
func (repository *postgresRepository) List(context context.Context) ([]*Comic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		comicColumns, schema.CoreComic.Table, schema.CoreComic.ID)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("list comics: %w", err)
	}

	comics, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Comic, error) {
		return scanComic(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan comics: %w", err)
	}

	if comics == nil {
		comics = []*Comic{}
	}
	return comics, nil
}

// FindByID returns the comic with the given id.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Comic, error) {
	if !uuid.IsValid(id) {
		return nil, ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		comicColumns, schema.CoreComic.Table, schema.CoreComic.ID)

	comic, err := scanComic(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find comic", ErrNotFound)
	}
	return comic, nil
}

// Create inserts the comic under a fresh UUIDv7.
func (repository *postgresRepository) Create(context context.Context, comic *Comic) error {
	comic.ID = uuid.New()

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.CoreComic.Table, comicColumns)

	_, err := repository.pool.Exec(context, query,
		comic.ID, comic.Title, comic.Description, comic.Author, comic.Year, comic.CoverImage, comic.Images,
	)
	if err != nil {
		return fmt.Errorf("insert comic: %w", err)
	}
	return nil
}

/*
Update applies the patch in a single statement.

Description: Nil patch fields bind as SQL NULL and COALESCE keeps the stored
value, so omitted fields are never overwritten. The images column is not
part of the statement.
*/
func (repository *postgresRepository) Update(context context.Context, id string, patch Patch) (*Comic, error) {
	if !uuid.IsValid(id) {
		return nil, ErrNotFound
	}

	table := schema.CoreComic
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = COALESCE($2, %s),
			%s = COALESCE($3, %s),
			%s = COALESCE($4, %s),
			%s = COALESCE($5::integer, %s),
			%s = COALESCE($6, %s)
		WHERE %s = $1
		RETURNING %s`,
		table.Table,
		table.Title, table.Title,
		table.Description, table.Description,
		table.Author, table.Author,
		table.Year, table.Year,
		table.CoverImage, table.CoverImage,
		table.ID,
		comicColumns,
	)

	comic, err := scanComic(repository.pool.QueryRow(context, query,
		id, patch.Title, patch.Description, patch.Author, patch.Year, patch.CoverImage,
	))
	if err != nil {
		return nil, dberr.Wrap(err, "update comic", ErrNotFound)
	}
	return comic, nil
}

// Delete removes the row, reporting ErrNotFound when nothing matched.
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	if !uuid.IsValid(id) {
		return ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreComic.Table, schema.CoreComic.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("delete comic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanComic reads one row in [schema.CoreComicTable.Columns] order.
func scanComic(row pgx.Row) (*Comic, error) {
	var comic Comic
	err := row.Scan(
		&comic.ID, &comic.Title, &comic.Description, &comic.Author,
		&comic.Year, &comic.CoverImage, &comic.Images,
	)
	if err != nil {
		return nil, err
	}
	return &comic, nil
}
