// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles user accounts: registration, login and profile management.

# Architecture

  - Entities: User, Registration and LoginResult (response DTOs).
  - Roles: A user is either [sec.RoleUser] or [sec.RoleAdmin]; the role is fixed
    by the registration endpoint and can only change through a full update.
  - Security: Passwords go through a [sec.PasswordEncoder]. No token or
    session is issued on login.
*/
package account

import (
	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account.
type User struct {
	ID       string   `json:"_id"`
	Username string   `json:"username"`
	Password string   `json:"-"` // Never serialized.
	Email    string   `json:"email"`
	Fullname string   `json:"fullname"`
	Role     sec.Role `json:"role"`
}

// Registration is the outcome of a sign-up attempt. A taken username is
// reported as data, not as an error.
type Registration struct {
	Exists    bool  `json:"exists"`
	SavedUser *User `json:"savedUser,omitempty"`
}

// LoginResult is the outcome of a login attempt.
type LoginResult struct {
	Exists   bool      `json:"exists"`
	Role     *sec.Role `json:"role,omitempty"`
	ID       string    `json:"_id,omitempty"`
	Fullname string    `json:"fullname,omitempty"`
	Email    string    `json:"email,omitempty"`
	Message  string    `json:"message"`
	Error    string    `json:"error,omitempty"`
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldFullname = "fullname"
	FieldRole     = "role"
)

// # Errors & Messages

// ErrNotFound is returned when no account matches the requested id.
var ErrNotFound = apperr.NotFound("User")

const (
	msgListFailed   = "Failed to list users"
	msgGetFailed    = "Failed to get user"
	msgCreateFailed = "Failed to create user"
	msgUpdateFailed = "Failed to update user"
	msgDeleteFailed = "Failed to delete user"
	msgLoginFailed  = "Failed to log in"

	msgDeleted = "User deleted successfully"

	msgAccountNotFound = "account not found"
	msgWrongPassword   = "wrong password"
	msgLoginRejected   = "login failed"
	msgLoginSucceeded  = "login succeeded"
)

// Metric outcome labels.
const (
	outcomeCreated  = "created"
	outcomeExists   = "exists"
	outcomeFailed   = "failed"
	outcomeNotFound = "not_found"
	outcomeRejected = "wrong_password"
	outcomeSuccess  = "success"
)
