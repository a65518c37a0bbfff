// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comic defines the catalogue entity of the CMS and its access layer.

A comic is a flat record: title, description, author, publication year,
a cover image and an ordered list of page images.

Core Responsibility:

  - Catalogue: Stores and returns comics without filtering or pagination.
  - Management: Creation with full validation, partial updates, hard deletes.
  - Storage: Postgres, Mongo and in-memory repositories behind [Repository].
*/
package comic

import "github.com/taibuivan/yomira-cms/internal/platform/apperr"

// # Field Names

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAuthor      = "author"
	FieldYear        = "year"
	FieldCoverImage  = "coverImage"
	FieldImages      = "images"
)

// # Errors

// ErrNotFound is returned when no comic matches the requested id.
var ErrNotFound = apperr.NotFound("Comic")

// Operation messages returned when the store fails.
const (
	msgListFailed   = "Failed to list comics"
	msgGetFailed    = "Failed to get comic"
	msgCreateFailed = "Failed to create comic"
	msgUpdateFailed = "Failed to update comic"
	msgDeleteFailed = "Failed to delete comic"

	msgDeleted = "Comic deleted successfully"
)

// # Core Entities

// Comic is a single publication in the catalogue.
type Comic struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Year        int      `json:"year"`
	CoverImage  string   `json:"coverImage"`
	Images      []string `json:"images"` // Page images in reading order, fixed at creation
}

// Patch carries the mutable subset of a comic. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Author      *string
	Year        *int
	CoverImage  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Author == nil && p.Year == nil && p.CoverImage == nil
}

// Apply writes the supplied fields onto comic.
func (p Patch) Apply(comic *Comic) {
	if p.Title != nil {
		comic.Title = *p.Title
	}
	if p.Description != nil {
		comic.Description = *p.Description
	}
	if p.Author != nil {
		comic.Author = *p.Author
	}
	if p.Year != nil {
		comic.Year = *p.Year
	}
	if p.CoverImage != nil {
		comic.CoverImage = *p.CoverImage
	}
}
