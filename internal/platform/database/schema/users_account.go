// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table    string
	ID       string
	Username string
	Password string
	Email    string
	Fullname string
	Role     string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:    "users.account",
	ID:       "id",
	Username: "username",
	Password: "password",
	Email:    "email",
	Fullname: "fullname",
	Role:     "role",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Password, t.Email, t.Fullname, t.Role,
	}
}
