// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import "context"

// # Repository Contracts

// Repository defines the persistence contract for user accounts.
//
// Username and email are unique; a violation surfaces as a plain storage
// error from Create or Replace.
type Repository interface {
	/*
		List returns every stored account.

		Returns:
		  - []*User: All accounts (empty, never nil)
		  - error: Storage failures
	*/
	List(context context.Context) ([]*User, error)

	/*
		FindByID retrieves an account by its id.

		Returns:
		  - *User: Loaded account entity
		  - error: ErrNotFound (also for malformed ids) or storage failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername retrieves an account by its unique username.

		Returns:
		  - *User: Loaded account entity
		  - error: ErrNotFound or storage failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a new account and assigns its id.

		Returns:
		  - error: Storage or uniqueness failures
	*/
	Create(context context.Context, user *User) error

	/*
		Replace overwrites every mutable field of the account with user.ID.

		Returns:
		  - *User: The stored account after the update
		  - error: ErrNotFound, storage or uniqueness failures
	*/
	Replace(context context.Context, user *User) (*User, error)

	/*
		Delete physically removes an account.

		Returns:
		  - error: ErrNotFound or storage failures
	*/
	Delete(context context.Context, id string) error
}
