// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "fmt"

// # User Roles

// Role represents the authorization level granted to an account.
//
// It is serialized as its integer value (1 or 2) in JSON and in every store.
type Role int

const (
	// RoleUser is a regular reader. Sees only their own comments.
	RoleUser Role = 1

	// RoleAdmin sees every comment on a comic.
	RoleAdmin Role = 2
)

// IsValid reports whether r is one of the two defined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// String returns a readable name for logs.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}
