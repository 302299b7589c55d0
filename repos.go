/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore

import (
	"fmt"
	"reflect"
	"sync"
)

// TypedRepos holds the repositories of a single item type T, keyed by a
// caller-chosen name such as "users" or "orders".
type TypedRepos[T any] struct {
	mu    sync.RWMutex
	repos map[string]*Repository[T]
}

// NewTypedRepos creates an empty registry for type T.
func NewTypedRepos[T any]() *TypedRepos[T] {
	return &TypedRepos[T]{
		repos: make(map[string]*Repository[T]),
	}
}

// Register adds a repository under the given key.
func (tr *TypedRepos[T]) Register(key string, repo *Repository[T]) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.repos[key]; exists {
		return fmt.Errorf("repository with key %q already registered", key)
	}

	tr.repos[key] = repo
	return nil
}

// Get retrieves a repository by key.
func (tr *TypedRepos[T]) Get(key string) (*Repository[T], error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	repo, exists := tr.repos[key]
	if !exists {
		return nil, fmt.Errorf("repository with key %q not found", key)
	}

	return repo, nil
}

// Remove deletes a repository by key. The repository is not closed; the
// caller owns its lifecycle.
func (tr *TypedRepos[T]) Remove(key string) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.repos[key]; !exists {
		return fmt.Errorf("repository with key %q not found", key)
	}

	delete(tr.repos, key)
	return nil
}

// List returns all registered repository keys.
func (tr *TypedRepos[T]) List() []string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	keys := make([]string, 0, len(tr.repos))
	for k := range tr.repos {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeRepos manages TypedRepos instances for different item types.
type MultiTypeRepos struct {
	mu        sync.Mutex
	typeRepos map[reflect.Type]interface{}
}

// NewMultiTypeRepos creates a new MultiTypeRepos.
func NewMultiTypeRepos() *MultiTypeRepos {
	return &MultiTypeRepos{
		typeRepos: make(map[reflect.Type]interface{}),
	}
}

// GetTypedRepos returns the TypedRepos for the specified type, creating it
// if necessary.
func GetTypedRepos[T any](mtr *MultiTypeRepos) *TypedRepos[T] {
	mtr.mu.Lock()
	defer mtr.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if tr, exists := mtr.typeRepos[typ]; exists {
		return tr.(*TypedRepos[T])
	}

	newRepos := NewTypedRepos[T]()
	mtr.typeRepos[typ] = newRepos
	return newRepos
}

// RegisterRepo is a convenience function to register a repository for type T.
func RegisterRepo[T any](mtr *MultiTypeRepos, key string, repo *Repository[T]) error {
	return GetTypedRepos[T](mtr).Register(key, repo)
}

// GetRepo is a convenience function to get a repository for type T.
func GetRepo[T any](mtr *MultiTypeRepos, key string) (*Repository[T], error) {
	return GetTypedRepos[T](mtr).Get(key)
}

// RemoveRepo is a convenience function to remove a repository for type T.
func RemoveRepo[T any](mtr *MultiTypeRepos, key string) error {
	return GetTypedRepos[T](mtr).Remove(key)
}

// ListRepos is a convenience function to list all repository keys for type T.
func ListRepos[T any](mtr *MultiTypeRepos) []string {
	return GetTypedRepos[T](mtr).List()
}
