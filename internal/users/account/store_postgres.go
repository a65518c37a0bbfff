// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/yomira-cms/internal/platform/database/schema"
	"github.com/taibuivan/yomira-cms/internal/platform/dberr"
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
	"github.com/taibuivan/yomira-cms/pkg/uuid"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
// Uniqueness is enforced by the UNIQUE constraints on users.account.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation for accounts.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var accountColumns = strings.Join(schema.UserAccount.Columns(), ", ")

// List returns all accounts in creation order.
func (repository *PostgresRepository) List(context context.Context) ([]*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		accountColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan accounts: %w", err)
	}

	if users == nil {
		users = []*User{}
	}
	return users, nil
}

// FindByID retrieves a user record by id.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	if !uuid.IsValid(id) {
		return nil, ErrNotFound
	}
	return repository.findOne(context, schema.UserAccount.ID, id)
}

// FindByUsername retrieves a user record by username.
func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, schema.UserAccount.Username, username)
}

func (repository *PostgresRepository) findOne(context context.Context, column, value string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns, schema.UserAccount.Table, column)

	user, err := scanUser(repository.pool.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.Wrap(err, "find account", ErrNotFound)
	}
	return user, nil
}

// Create inserts a new account under a fresh UUIDv7.
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	user.ID = uuid.New()

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.UserAccount.Table, accountColumns)

	_, err := repository.pool.Exec(context, query,
		user.ID, user.Username, user.Password, user.Email, user.Fullname, int16(user.Role),
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// Replace overwrites all fields of the account and returns the stored row.
func (repository *PostgresRepository) Replace(context context.Context, user *User) (*User, error) {
	if !uuid.IsValid(user.ID) {
		return nil, ErrNotFound
	}

	table := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
		RETURNING %s`,
		table.Table,
		table.Username, table.Password, table.Email, table.Fullname, table.Role,
		table.ID,
		accountColumns,
	)

	updated, err := scanUser(repository.pool.QueryRow(context, query,
		user.ID, user.Username, user.Password, user.Email, user.Fullname, int16(user.Role),
	))
	if err != nil {
		return nil, dberr.Wrap(err, "update account", ErrNotFound)
	}
	return updated, nil
}

// Delete removes the account row.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	if !uuid.IsValid(id) {
		return ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserAccount.Table, schema.UserAccount.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var (
		user User
		role *int16
	)
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Email, &user.Fullname, &role)
	if err != nil {
		return nil, err
	}
	if role != nil {
		user.Role = sec.Role(*role)
	}
	return &user, nil
}
