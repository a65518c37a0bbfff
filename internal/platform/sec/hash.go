// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides role definitions and password storage strategies.
//
// # Password Storage
//
// Two strategies exist. [PlainPasswords] stores and compares the password
// verbatim, which is the behavior existing clients and data rely on.
// [BcryptPasswords] is opt-in through configuration.
package sec

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncoder turns a submitted password into its stored form and checks
// submissions against a stored value.
type PasswordEncoder interface {
	// Encode returns the value to persist for plainTextPassword.
	Encode(plainTextPassword string) (string, error)

	// Matches reports whether plainTextPassword corresponds to stored.
	Matches(plainTextPassword, stored string) bool
}

// NewPasswordEncoder returns the encoder for a configured mode ("plain" or "bcrypt").
func NewPasswordEncoder(mode string) (PasswordEncoder, error) {
	switch mode {
	case "plain":
		return PlainPasswords{}, nil
	case "bcrypt":
		return BcryptPasswords{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("sec: unknown password mode %q", mode)
	}
}

// PlainPasswords keeps passwords in clear text.
type PlainPasswords struct{}

// Encode returns the password unchanged.
func (PlainPasswords) Encode(plainTextPassword string) (string, error) {
	return plainTextPassword, nil
}

// Matches compares in constant time.
func (PlainPasswords) Matches(plainTextPassword, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(plainTextPassword), []byte(stored)) == 1
}

// BcryptPasswords hashes passwords using the bcrypt algorithm.
type BcryptPasswords struct {
	Cost int
}

// Encode hashes a plain-text password.
func (encoder BcryptPasswords) Encode(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), encoder.Cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Matches compares a plain-text password with its hashed version.
func (BcryptPasswords) Matches(plainTextPassword, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plainTextPassword))
	return err == nil
}
