// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/metrics"
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
	"github.com/taibuivan/yomira-cms/internal/platform/validate"
	"github.com/taibuivan/yomira-cms/pkg/pointer"
)

// # Service Layer

// Service orchestrates registration, login and profile management.
type Service struct {
	repo      Repository
	passwords sec.PasswordEncoder
}

// NewService constructs a new account [Service].
func NewService(repo Repository, passwords sec.PasswordEncoder) *Service {
	return &Service{repo: repo, passwords: passwords}
}

// RegisterInput is the record shape accepted by the registration endpoints.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Fullname string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Username string
	Password string
}

// UpdateInput is the full record used to replace an account. Role is a raw
// integer so that out-of-range values can be rejected.
type UpdateInput struct {
	Username string
	Password string
	Email    string
	Fullname string
	Role     *int
}

// # Lookups

// List returns every account.
func (service *Service) List(context context.Context) ([]*User, error) {
	users, err := service.repo.List(context)
	if err != nil {
		return nil, apperr.Wrap(err, msgListFailed)
	}
	return users, nil
}

// Get returns a single account or [ErrNotFound].
func (service *Service) Get(context context.Context, id string) (*User, error) {
	user, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, apperr.Wrap(err, msgGetFailed)
	}
	return user, nil
}

// Exists reports whether an account with the given id is stored.
// Store errors are returned unwrapped for the caller to classify.
func (service *Service) Exists(context context.Context, id string) (bool, error) {
	_, found, err := service.RoleOf(context, id)
	return found, err
}

// RoleOf returns the role of the account with the given id. found is false
// when no such account exists.
func (service *Service) RoleOf(context context.Context, id string) (role sec.Role, found bool, err error) {
	user, err := service.repo.FindByID(context, id)
	if apperr.IsNotFound(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return user.Role, true, nil
}

// # Registration & Login

/*
Register signs up a new account with a fixed role.

Description: Required fields are validated first. A taken username is
reported as Registration{Exists: true} without any write. Email uniqueness
is left to the store, so a duplicate email surfaces as a 500.

Parameters:
  - context: context.Context
  - input: RegisterInput
  - role: sec.Role (Fixed by the endpoint, never by the client)

Returns:
  - *Registration: Exists flag and, when created, the saved account
  - error: Validation or persistence errors
*/
func (service *Service) Register(context context.Context, input RegisterInput, role sec.Role) (*Registration, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password).
		Required(FieldEmail, input.Email).
		Required(FieldFullname, input.Fullname)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	_, err := service.repo.FindByUsername(context, input.Username)
	switch {
	case err == nil:
		metrics.RecordRegistration(role.String(), outcomeExists)
		return &Registration{Exists: true}, nil
	case !apperr.IsNotFound(err):
		metrics.RecordRegistration(role.String(), outcomeFailed)
		return nil, apperr.Wrap(err, msgCreateFailed)
	}

	password, err := service.passwords.Encode(input.Password)
	if err != nil {
		metrics.RecordRegistration(role.String(), outcomeFailed)
		return nil, apperr.Wrap(err, msgCreateFailed)
	}

	user := &User{
		Username: input.Username,
		Password: password,
		Email:    input.Email,
		Fullname: input.Fullname,
		Role:     role,
	}

	if err := service.repo.Create(context, user); err != nil {
		metrics.RecordRegistration(role.String(), outcomeFailed)
		return nil, apperr.Wrap(err, msgCreateFailed)
	}

	metrics.RecordRegistration(role.String(), outcomeCreated)
	return &Registration{Exists: false, SavedUser: user}, nil
}

/*
Login checks a username/password pair.

Description: Every outcome except a store failure is reported in the
result, including an unknown account and a wrong password. No token or
session is created.

Returns:
  - *LoginResult: The outcome
  - error: Only when the store fails
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	user, err := service.repo.FindByUsername(context, input.Username)
	if apperr.IsNotFound(err) {
		metrics.RecordLogin(outcomeNotFound)
		return &LoginResult{Exists: false, Message: msgAccountNotFound, Error: msgAccountNotFound}, nil
	}
	if err != nil {
		metrics.RecordLogin(outcomeFailed)
		return nil, apperr.Wrap(err, msgLoginFailed)
	}

	if !service.passwords.Matches(input.Password, user.Password) {
		metrics.RecordLogin(outcomeRejected)
		return &LoginResult{Exists: true, Message: msgLoginRejected, Error: msgWrongPassword}, nil
	}

	metrics.RecordLogin(outcomeSuccess)
	return &LoginResult{
		Exists:   true,
		Role:     pointer.To(user.Role),
		ID:       user.ID,
		Fullname: user.Fullname,
		Email:    user.Email,
		Message:  msgLoginSucceeded,
	}, nil
}

// # Management

/*
Update replaces every field of an existing account.

Description: All five fields are required and role must be a known
[sec.Role]. The password goes through the configured encoder.

Returns:
  - *User: The account after the update
  - error: Validation, ErrNotFound or persistence errors
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*User, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password).
		Required(FieldEmail, input.Email).
		Required(FieldFullname, input.Fullname).
		Present(FieldRole, input.Role != nil)

	if input.Role != nil {
		validator.Custom(FieldRole, !sec.Role(*input.Role).IsValid(), "Must be 1 (user) or 2 (admin)")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	password, err := service.passwords.Encode(input.Password)
	if err != nil {
		return nil, apperr.Wrap(err, msgUpdateFailed)
	}

	updated, err := service.repo.Replace(context, &User{
		ID:       id,
		Username: input.Username,
		Password: password,
		Email:    input.Email,
		Fullname: input.Fullname,
		Role:     sec.Role(pointer.Val(input.Role)),
	})
	if err != nil {
		return nil, apperr.Wrap(err, msgUpdateFailed)
	}
	return updated, nil
}

// Delete removes an account. Its comments are left in place.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return apperr.Wrap(err, msgDeleteFailed)
	}
	return nil
}
