/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the DataClient interface for testing
package mock

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/suparena/itemstore/dataclient"
	"github.com/suparena/itemstore/errors"
	"github.com/suparena/itemstore/models"
)

var _ dataclient.DataClient[struct{}] = (*DataClient[struct{}])(nil)

// DataClient is an in-memory mock implementation of dataclient.DataClient[T].
// It keeps items per scope, records the arguments of the most recent List,
// Count, and Aggregate calls, and lets tests inject errors per operation.
type DataClient[T any] struct {
	mu   sync.RWMutex
	data map[string]map[string]T // scope -> id -> item

	createErr    error
	getErr       error
	listErr      error
	updateErr    error
	deleteErr    error
	countErr     error
	aggregateErr error

	listFunc      func(ctx context.Context, q models.ListQuery) (*models.Envelope[models.Page[T]], error)
	aggregateFunc func(ctx context.Context, p models.Pipeline, scope string) (*models.Envelope[[]models.Record], error)

	// Recorded arguments of the last calls, for assertion in tests.
	LastListQuery  *models.ListQuery
	LastCountQuery *models.CountQuery
	LastPipeline   models.Pipeline
	LastScope      string
}

// New creates a new mock DataClient.
func New[T any]() *DataClient[T] {
	return &DataClient[T]{
		data: make(map[string]map[string]T),
	}
}

// WithCreateError makes Create return an error
func (m *DataClient[T]) WithCreateError(err error) *DataClient[T] {
	m.createErr = err
	return m
}

// WithGetError makes Get return an error
func (m *DataClient[T]) WithGetError(err error) *DataClient[T] {
	m.getErr = err
	return m
}

// WithListError makes List return an error
func (m *DataClient[T]) WithListError(err error) *DataClient[T] {
	m.listErr = err
	return m
}

// WithUpdateError makes Update return an error
func (m *DataClient[T]) WithUpdateError(err error) *DataClient[T] {
	m.updateErr = err
	return m
}

// WithDeleteError makes Delete return an error
func (m *DataClient[T]) WithDeleteError(err error) *DataClient[T] {
	m.deleteErr = err
	return m
}

// WithCountError makes Count return an error
func (m *DataClient[T]) WithCountError(err error) *DataClient[T] {
	m.countErr = err
	return m
}

// WithAggregateError makes Aggregate return an error
func (m *DataClient[T]) WithAggregateError(err error) *DataClient[T] {
	m.aggregateErr = err
	return m
}

// WithListFunc sets a custom List implementation for testing
func (m *DataClient[T]) WithListFunc(f func(ctx context.Context, q models.ListQuery) (*models.Envelope[models.Page[T]], error)) *DataClient[T] {
	m.listFunc = f
	return m
}

// WithAggregateFunc sets a custom Aggregate implementation for testing
func (m *DataClient[T]) WithAggregateFunc(f func(ctx context.Context, p models.Pipeline, scope string) (*models.Envelope[[]models.Record], error)) *DataClient[T] {
	m.aggregateFunc = f
	return m
}

// Create stores the item under a synthetic sequential id. The mock never
// inspects item fields, so tests that need a known id use Seed instead.
func (m *DataClient[T]) Create(ctx context.Context, item T, scope string) (*models.Envelope[T], error) {
	if m.createErr != nil {
		return nil, m.createErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastScope = scope

	bucket := m.bucket(scope)
	bucket[strconv.Itoa(len(bucket)+1)] = item
	return models.NewEnvelope(item), nil
}

// Get retrieves an item by id.
func (m *DataClient[T]) Get(ctx context.Context, id string, scope string) (*models.Envelope[T], error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if item, ok := m.data[scope][id]; ok {
		return models.NewEnvelope(item), nil
	}
	return nil, errors.NewNotFoundError("Get", id)
}

// List returns all items in the scope as a single page, sorted by id for
// deterministic output.
func (m *DataClient[T]) List(ctx context.Context, q models.ListQuery) (*models.Envelope[models.Page[T]], error) {
	m.mu.Lock()
	qCopy := q
	m.LastListQuery = &qCopy
	m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	bucket := m.data[q.Scope]
	ids := make([]string, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]T, 0, len(ids))
	for _, id := range ids {
		items = append(items, bucket[id])
	}
	return models.NewEnvelope(models.Page[T]{Items: items}), nil
}

// Update replaces the item stored under id.
func (m *DataClient[T]) Update(ctx context.Context, id string, item T, scope string) (*models.Envelope[T], error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastScope = scope

	bucket := m.bucket(scope)
	if _, ok := bucket[id]; !ok {
		return nil, errors.NewNotFoundError("Update", id)
	}
	bucket[id] = item
	return models.NewEnvelope(item), nil
}

// Delete removes the item stored under id.
func (m *DataClient[T]) Delete(ctx context.Context, id string, scope string) (*models.Envelope[models.Empty], error) {
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastScope = scope

	bucket := m.bucket(scope)
	if _, ok := bucket[id]; !ok {
		return nil, errors.NewNotFoundError("Delete", id)
	}
	delete(bucket, id)
	return models.NewEnvelope(models.Empty{}), nil
}

// Count returns the number of items in the scope. The filter is recorded
// but not evaluated; tests that care stub List/Count errors instead.
func (m *DataClient[T]) Count(ctx context.Context, q models.CountQuery) (*models.Envelope[int64], error) {
	m.mu.Lock()
	qCopy := q
	m.LastCountQuery = &qCopy
	m.mu.Unlock()

	if m.countErr != nil {
		return nil, m.countErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return models.NewEnvelope(int64(len(m.data[q.Scope]))), nil
}

// Aggregate records the pipeline and returns no records unless a custom
// aggregate function is installed.
func (m *DataClient[T]) Aggregate(ctx context.Context, pipeline models.Pipeline, scope string) (*models.Envelope[[]models.Record], error) {
	m.mu.Lock()
	m.LastPipeline = pipeline
	m.LastScope = scope
	m.mu.Unlock()

	if m.aggregateErr != nil {
		return nil, m.aggregateErr
	}
	if m.aggregateFunc != nil {
		return m.aggregateFunc(ctx, pipeline, scope)
	}
	return models.NewEnvelope([]models.Record{}), nil
}

// Helper methods for testing

// Seed stores an item directly under the given id and scope.
func (m *DataClient[T]) Seed(scope, id string, item T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bucket(scope)[id] = item
}

// Items returns a copy of the scope's contents.
func (m *DataClient[T]) Items(scope string) map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data[scope]))
	for k, v := range m.data[scope] {
		result[k] = v
	}
	return result
}

// Clear removes all data in every scope.
func (m *DataClient[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]map[string]T)
}

func (m *DataClient[T]) bucket(scope string) map[string]T {
	b, ok := m.data[scope]
	if !ok {
		b = make(map[string]T)
		m.data[scope] = b
	}
	return b
}
