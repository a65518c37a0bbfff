// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment manages reader comments attached to comics.

Each comment references one comic and one user. References are checked when a
comment is posted but are not enforced afterwards: deleting a comic or a user
leaves its comments in place.

Listing by caller is role-driven. The caller declares their id in the userId
header; a regular user sees only their own comments on a comic, an admin
sees all of them.
*/
package comment

import (
	"time"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
)

// # Domain Entities

// Comment is a single reader comment on a comic.
type Comment struct {
	ID        string    `json:"_id"`
	ComicID   string    `json:"comicId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Filter selects comments of one comic, optionally narrowed to one author.
type Filter struct {
	ComicID string
	UserID  string // Empty matches every author
}

// Matches reports whether c satisfies the filter.
func (f Filter) Matches(c *Comment) bool {
	if c.ComicID != f.ComicID {
		return false
	}
	return f.UserID == "" || c.UserID == f.UserID
}

// # Field Identifiers

const (
	FieldComicID = "comicId"
	FieldUserID  = "userId"
	FieldContent = "content"
)

// # Errors & Messages

var (
	// ErrNotFound is returned when no comment matches the requested id.
	ErrNotFound = apperr.NotFound("Comment")

	// ErrReferenceNotFound is returned when the comic or the user a request
	// refers to does not exist.
	ErrReferenceNotFound = apperr.NotFoundMessage("Comic or user not found")

	// ErrCallerNotFound is returned when the id declared in the userId header
	// matches no account.
	ErrCallerNotFound = apperr.NotFoundMessage("User does not exist")

	// ErrInvalidRole is returned when the caller's stored role is neither
	// user nor admin.
	ErrInvalidRole = apperr.BadRequest("Invalid role")

	// ErrMissingCaller is returned when no caller id was declared.
	ErrMissingCaller = apperr.BadRequest("Missing userId header")
)

const (
	msgListFailed   = "Failed to list comments"
	msgCreateFailed = "Failed to post comment"
	msgUpdateFailed = "Failed to update comment"
	msgDeleteFailed = "Failed to delete comment"

	msgDeleted = "Comment deleted successfully"
)
