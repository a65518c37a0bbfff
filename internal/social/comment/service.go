// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"strings"
	"time"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
	"github.com/taibuivan/yomira-cms/internal/platform/validate"
)

// # Dependencies

// ComicDirectory answers whether a comic exists.
type ComicDirectory interface {
	Exists(context context.Context, id string) (bool, error)
}

// UserDirectory answers whether a user exists and which role they hold.
type UserDirectory interface {
	Exists(context context.Context, id string) (bool, error)
	RoleOf(context context.Context, id string) (role sec.Role, found bool, err error)
}

// # Service Layer

// Service orchestrates comment retrieval, posting and moderation.
//
// Existence checks and writes are separate store round-trips; a reference
// deleted between the check and the insert leaves a dangling comment.
type Service struct {
	repo   Repository
	comics ComicDirectory
	users  UserDirectory
	now    func() time.Time
}

// NewService constructs a new comment [Service].
func NewService(repo Repository, comics ComicDirectory, users UserDirectory) *Service {
	return &Service{
		repo:   repo,
		comics: comics,
		users:  users,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// CreateInput is the record shape accepted when posting a comment.
type CreateInput struct {
	ComicID string
	UserID  string
	Content string
}

// # Listing

/*
ListByComicAndUser returns the comments one user left on one comic.

Returns:
  - []*Comment: Matching comments in creation order
  - error: ErrReferenceNotFound if the comic or the user is missing
*/
func (service *Service) ListByComicAndUser(context context.Context, comicID, userID string) ([]*Comment, error) {
	if err := service.checkReferences(context, comicID, userID); err != nil {
		return nil, apperr.Wrap(err, msgListFailed)
	}

	comments, err := service.repo.List(context, Filter{ComicID: comicID, UserID: userID})
	if err != nil {
		return nil, apperr.Wrap(err, msgListFailed)
	}
	return comments, nil
}

/*
ListForCaller returns the comments on a comic visible to the caller.

Description: The caller's stored role decides the scope. A regular user
sees only their own comments; an admin sees every comment on the comic.
The comic itself is not checked for existence, so an unknown comic yields
an empty list.

Parameters:
  - context: context.Context
  - comicID: string
  - callerID: string (Declared through the userId header, not authenticated)

Returns:
  - []*Comment: Visible comments in creation order
  - error: ErrMissingCaller, ErrCallerNotFound, ErrInvalidRole or storage failures
*/
func (service *Service) ListForCaller(context context.Context, comicID, callerID string) ([]*Comment, error) {
	if strings.TrimSpace(callerID) == "" {
		return nil, ErrMissingCaller
	}

	role, found, err := service.users.RoleOf(context, callerID)
	if err != nil {
		return nil, apperr.Wrap(err, msgListFailed)
	}
	if !found {
		return nil, ErrCallerNotFound
	}

	var filter Filter
	switch role {
	case sec.RoleUser:
		filter = Filter{ComicID: comicID, UserID: callerID}
	case sec.RoleAdmin:
		filter = Filter{ComicID: comicID}
	default:
		return nil, ErrInvalidRole
	}

	comments, err := service.repo.List(context, filter)
	if err != nil {
		return nil, apperr.Wrap(err, msgListFailed)
	}
	return comments, nil
}

// # Management

/*
Create posts a new comment after checking both references.

Description: Nothing is written when validation fails or when the comic
or the user is missing. createdAt is assigned by the server.

Returns:
  - *Comment: The stored comment
  - error: Validation, ErrReferenceNotFound or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Comment, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldComicID, input.ComicID).
		Required(FieldUserID, input.UserID).
		Required(FieldContent, input.Content)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.checkReferences(context, input.ComicID, input.UserID); err != nil {
		return nil, apperr.Wrap(err, msgCreateFailed)
	}

	comment := &Comment{
		ComicID:   input.ComicID,
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: service.now(),
	}

	if err := service.repo.Create(context, comment); err != nil {
		return nil, apperr.Wrap(err, msgCreateFailed)
	}
	return comment, nil
}

// UpdateContent replaces the content of a comment. Every other field keeps
// its stored value.
func (service *Service) UpdateContent(context context.Context, id, content string) (*Comment, error) {
	validator := &validate.Validator{}
	if err := validator.Required(FieldContent, content).Err(); err != nil {
		return nil, err
	}

	comment, err := service.repo.UpdateContent(context, id, content)
	if err != nil {
		return nil, apperr.Wrap(err, msgUpdateFailed)
	}
	return comment, nil
}

// Delete removes a comment.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return apperr.Wrap(err, msgDeleteFailed)
	}
	return nil
}

// checkReferences returns ErrReferenceNotFound when either id is unknown.
// Store errors are returned as is for the caller to wrap.
func (service *Service) checkReferences(context context.Context, comicID, userID string) error {
	comicExists, err := service.comics.Exists(context, comicID)
	if err != nil {
		return err
	}

	userExists, err := service.users.Exists(context, userID)
	if err != nil {
		return err
	}

	if !comicExists || !userExists {
		return ErrReferenceNotFound
	}
	return nil
}
