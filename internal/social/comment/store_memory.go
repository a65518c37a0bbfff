// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/yomira-cms/pkg/slice"
	"github.com/taibuivan/yomira-cms/pkg/uuid"
)

// MemoryRepository implements [Repository] on a guarded slice kept in
// insertion order.
type MemoryRepository struct {
	mu       sync.RWMutex
	comments []Comment
}

// NewMemoryRepository constructs an empty in-memory comment store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (repository *MemoryRepository) List(_ context.Context, filter Filter) ([]*Comment, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matching := slice.Filter(repository.comments, func(stored Comment) bool { return filter.Matches(&stored) })
	return slice.Map(matching, func(stored Comment) *Comment { return &stored }), nil
}

func (repository *MemoryRepository) Create(_ context.Context, comment *Comment) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	comment.ID = uuid.New()
	repository.comments = append(repository.comments, *comment)
	return nil
}

func (repository *MemoryRepository) UpdateContent(_ context.Context, id, content string) (*Comment, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, ErrNotFound
	}

	repository.comments[index].Content = content
	updated := repository.comments[index]
	return &updated, nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(id)
	if index < 0 {
		return ErrNotFound
	}

	repository.comments = slices.Delete(repository.comments, index, index+1)
	return nil
}

// Len returns the number of stored comments.
func (repository *MemoryRepository) Len() int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return len(repository.comments)
}

func (repository *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(repository.comments, func(comment Comment) bool { return comment.ID == id })
}
