// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/validate"
)

// # Service Layer

// Service orchestrates the business logic for the comic catalogue.
type Service struct {
	repo Repository
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput is the record shape accepted when creating a comic.
// Year is a pointer so that an omitted year is distinguishable from zero.
type CreateInput struct {
	Title       string
	Description string
	Author      string
	Year        *int
	CoverImage  string
	Images      []string
}

// # Comic Lookups

// List returns the whole catalogue.
func (service *Service) List(context context.Context) ([]*Comic, error) {
	comics, err := service.repo.List(context)
	if err != nil {
		return nil, apperr.Wrap(err, msgListFailed)
	}
	return comics, nil
}

// Get returns a single comic or [ErrNotFound].
func (service *Service) Get(context context.Context, id string) (*Comic, error) {
	comic, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, apperr.Wrap(err, msgGetFailed)
	}
	return comic, nil
}

// # Comic Management

/*
Create validates and persists a new comic.

Description: All six fields are required and every image entry must be
non-empty. Nothing is written when validation fails.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Comic: The stored comic including its generated ID
  - error: Validation or persistence errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Comic, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		Required(FieldDescription, input.Description).
		Required(FieldAuthor, input.Author).
		Present(FieldYear, input.Year != nil).
		Required(FieldCoverImage, input.CoverImage).
		EachRequired(FieldImages, input.Images)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	comic := &Comic{
		Title:       input.Title,
		Description: input.Description,
		Author:      input.Author,
		Year:        *input.Year,
		CoverImage:  input.CoverImage,
		Images:      input.Images,
	}

	if err := service.repo.Create(context, comic); err != nil {
		return nil, apperr.Wrap(err, msgCreateFailed)
	}
	return comic, nil
}

/*
Update applies a partial modification to an existing comic.

Description: Only title, description, author, year and coverImage can
change. Supplied text fields must not be blank; omitted fields keep their
stored value.

Parameters:
  - context: context.Context
  - id: string
  - patch: Patch

Returns:
  - *Comic: The comic after the update
  - error: Validation, ErrNotFound or persistence errors
*/
func (service *Service) Update(context context.Context, id string, patch Patch) (*Comic, error) {
	validator := &validate.Validator{}
	validator.
		NotBlank(FieldTitle, patch.Title).
		NotBlank(FieldDescription, patch.Description).
		NotBlank(FieldAuthor, patch.Author).
		NotBlank(FieldCoverImage, patch.CoverImage)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	comic, err := service.repo.Update(context, id, patch)
	if err != nil {
		return nil, apperr.Wrap(err, msgUpdateFailed)
	}
	return comic, nil
}

// Delete removes a comic. Comments that reference it are left in place.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return apperr.Wrap(err, msgDeleteFailed)
	}
	return nil
}

// Exists reports whether a comic with the given id is stored.
func (service *Service) Exists(context context.Context, id string) (bool, error) {
	_, err := service.repo.FindByID(context, id)
	if apperr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
