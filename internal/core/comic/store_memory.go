// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/yomira-cms/pkg/uuid"
)

// # In-Memory Repository

// memoryRepository implements the [Repository] interface on a guarded map.
// It returns copies so callers never alias stored records.
type memoryRepository struct {
	mu     sync.RWMutex
	comics map[string]*Comic
	order  []string
}

// NewMemoryRepository constructs an empty in-memory comic store.
func NewMemoryRepository() Repository {
	return &memoryRepository{comics: make(map[string]*Comic)}
}

func (repository *memoryRepository) List(_ context.Context) ([]*Comic, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	comics := make([]*Comic, 0, len(repository.order))
	for _, id := range repository.order {
		comics = append(comics, clone(repository.comics[id]))
	}
	return comics, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*Comic, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	comic, ok := repository.comics[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(comic), nil
}

func (repository *memoryRepository) Create(_ context.Context, comic *Comic) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	comic.ID = uuid.New()
	repository.comics[comic.ID] = clone(comic)
	repository.order = append(repository.order, comic.ID)
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, id string, patch Patch) (*Comic, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	comic, ok := repository.comics[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(comic)
	return clone(comic), nil
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.comics[id]; !ok {
		return ErrNotFound
	}
	delete(repository.comics, id)
	repository.order = slices.DeleteFunc(repository.order, func(existing string) bool { return existing == id })
	return nil
}

func clone(comic *Comic) *Comic {
	copied := *comic
	copied.Images = slices.Clone(comic.Images)
	return &copied
}
