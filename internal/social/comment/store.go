// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "context"

// Repository defines the persistence contract for comments.
type Repository interface {
	/*
		List returns the comments matching filter in creation order.

		Returns:
		  - []*Comment: Matching comments (empty, never nil); a malformed id
		    in the filter matches nothing
		  - error: Storage failures
	*/
	List(context context.Context, filter Filter) ([]*Comment, error)

	/*
		Create persists a new comment and assigns its id.

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, comment *Comment) error

	/*
		UpdateContent replaces the content of a comment, leaving every other
		field untouched.

		Returns:
		  - *Comment: The comment after the update
		  - error: ErrNotFound or storage failures
	*/
	UpdateContent(context context.Context, id, content string) (*Comment, error)

	/*
		Delete physically removes a comment.

		Returns:
		  - error: ErrNotFound or storage failures
	*/
	Delete(context context.Context, id string) error
}
