// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/taibuivan/yomira-cms/pkg/uuid"
)

// # In-Memory Repository

var (
	errDuplicateUsername = errors.New("account: duplicate username")
	errDuplicateEmail    = errors.New("account: duplicate email")
)

// MemoryRepository implements [Repository] on a guarded map and enforces the
// same username/email uniqueness as the database backends.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
	order []string
}

// NewMemoryRepository constructs an empty in-memory account store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

func (repository *MemoryRepository) List(_ context.Context) ([]*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	users := make([]*User, 0, len(repository.order))
	for _, id := range repository.order {
		user := repository.users[id]
		users = append(users, &user)
	}
	return users, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (repository *MemoryRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, user := range repository.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (repository *MemoryRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if err := repository.checkUnique(*user, ""); err != nil {
		return err
	}

	user.ID = uuid.New()
	repository.users[user.ID] = *user
	repository.order = append(repository.order, user.ID)
	return nil
}

func (repository *MemoryRepository) Replace(_ context.Context, user *User) (*User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.users[user.ID]; !ok {
		return nil, ErrNotFound
	}
	if err := repository.checkUnique(*user, user.ID); err != nil {
		return nil, err
	}

	repository.users[user.ID] = *user
	stored := *user
	return &stored, nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.users[id]; !ok {
		return ErrNotFound
	}
	delete(repository.users, id)
	repository.order = slices.DeleteFunc(repository.order, func(existing string) bool { return existing == id })
	return nil
}

// checkUnique must be called with the write lock held. selfID is skipped so
// an account can keep its own username and email on replace.
func (repository *MemoryRepository) checkUnique(candidate User, selfID string) error {
	for id, user := range repository.users {
		if id == selfID {
			continue
		}
		if user.Username == candidate.Username {
			return errDuplicateUsername
		}
		if user.Email == candidate.Email {
			return errDuplicateEmail
		}
	}
	return nil
}
