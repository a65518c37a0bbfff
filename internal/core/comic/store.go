// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import "context"

// # Comic Data Access

// Repository defines the data access contract for the comic domain.
type Repository interface {

	/*
		List returns every comic in the store.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Comic: All stored comics (empty, never nil)
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Comic, error)

	/*
		FindByID returns the comic with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Comic: The hydrated domain entity
		  - error: ErrNotFound if missing or if the id is malformed
	*/
	FindByID(context context.Context, id string) (*Comic, error)

	/*
		Create persists a new comic and assigns its ID.

		Parameters:
		  - context: context.Context
		  - comic: *Comic (ID is overwritten by the store)

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, comic *Comic) error

	/*
		Update applies a partial modification and returns the stored result.

		Parameters:
		  - context: context.Context
		  - id: string
		  - patch: Patch (Nil fields are left untouched)

		Returns:
		  - *Comic: The comic after the update
		  - error: ErrNotFound if missing
	*/
	Update(context context.Context, id string, patch Patch) (*Comic, error)

	/*
		Delete physically removes a comic.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: ErrNotFound if missing
	*/
	Delete(context context.Context, id string) error
}
