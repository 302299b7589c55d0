/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore

import (
	"context"
	"sync"

	"github.com/suparena/itemstore/dataclient"
	"github.com/suparena/itemstore/models"
	"github.com/suparena/itemstore/registry"
)

// Repository is a thin, type-safe facade over a DataClient[T]. It forwards
// every operation to the client, unwraps the response envelope, and
// propagates client errors verbatim. Successful mutations publish a
// ChangeEvent tagged with the item's type name.
//
// The facade holds no state beyond the client and the notifier: no cache,
// no locks around client calls, no retry or timeout policy. Concurrent
// operations race exactly as the client allows.
type Repository[T any] struct {
	client   dataclient.DataClient[T]
	notifier *ChangeNotifier
	typeName string
	closeOne sync.Once
}

// New constructs a Repository over the given client. The notification tag
// comes from the type-name registry, falling back to T's own name.
func New[T any](client dataclient.DataClient[T]) *Repository[T] {
	return &Repository[T]{
		client:   client,
		notifier: NewChangeNotifier(),
		typeName: registry.TypeNameFor[T](),
	}
}

// Create stores a new item and returns the stored representation.
// Accepts WithScope. Publishes one ChangeEvent on success.
func (r *Repository[T]) Create(ctx context.Context, item T, opts ...Option) (T, error) {
	o := resolveOptions(opts)
	env, err := r.client.Create(ctx, item, o.scope)
	if err != nil {
		var zero T
		return zero, err
	}
	r.notifyChanged()
	return env.Payload, nil
}

// Get returns the item stored under id. Accepts WithScope.
// A missing item surfaces as the client's not-found error, untranslated.
func (r *Repository[T]) Get(ctx context.Context, id string, opts ...Option) (T, error) {
	o := resolveOptions(opts)
	env, err := r.client.Get(ctx, id, o.scope)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Payload, nil
}

// List returns one page of items. Accepts WithScope, WithFilter, WithSort,
// and WithPage; omitted options reach the client as explicit zero values.
func (r *Repository[T]) List(ctx context.Context, opts ...Option) (models.Page[T], error) {
	o := resolveOptions(opts)
	env, err := r.client.List(ctx, models.ListQuery{
		Scope:  o.scope,
		Filter: o.filter,
		Sort:   o.sort,
		Page:   o.page,
	})
	if err != nil {
		return models.Page[T]{}, err
	}
	return env.Payload, nil
}

// Update replaces the item stored under id and returns the stored
// representation. Accepts WithScope. Publishes one ChangeEvent on success.
func (r *Repository[T]) Update(ctx context.Context, id string, item T, opts ...Option) (T, error) {
	o := resolveOptions(opts)
	env, err := r.client.Update(ctx, id, item, o.scope)
	if err != nil {
		var zero T
		return zero, err
	}
	r.notifyChanged()
	return env.Payload, nil
}

// Delete removes the item stored under id. Accepts WithScope.
// Publishes one ChangeEvent on success.
func (r *Repository[T]) Delete(ctx context.Context, id string, opts ...Option) error {
	o := resolveOptions(opts)
	if _, err := r.client.Delete(ctx, id, o.scope); err != nil {
		return err
	}
	r.notifyChanged()
	return nil
}

// Count returns the number of items matching the optional filter.
// Accepts WithScope and WithFilter.
func (r *Repository[T]) Count(ctx context.Context, opts ...Option) (int64, error) {
	o := resolveOptions(opts)
	env, err := r.client.Count(ctx, models.CountQuery{
		Scope:  o.scope,
		Filter: o.filter,
	})
	if err != nil {
		return 0, err
	}
	return env.Payload, nil
}

// Aggregate runs the pipeline and returns its result records. The pipeline
// passes through to the client unmodified, stage order preserved.
// Accepts WithScope.
func (r *Repository[T]) Aggregate(ctx context.Context, pipeline models.Pipeline, opts ...Option) ([]models.Record, error) {
	o := resolveOptions(opts)
	env, err := r.client.Aggregate(ctx, pipeline, o.scope)
	if err != nil {
		return nil, err
	}
	return env.Payload, nil
}

// Subscribe registers an observer on the repository's change stream.
// See ChangeNotifier.Subscribe for delivery semantics.
func (r *Repository[T]) Subscribe() (<-chan ChangeEvent, func()) {
	return r.notifier.Subscribe()
}

// Close shuts down the change stream. Subscribers observe channel closure;
// later mutations still reach the client but publish nothing. Close is safe
// to call once per repository and tolerates repeated calls.
func (r *Repository[T]) Close() {
	r.closeOne.Do(r.notifier.Close)
}

func (r *Repository[T]) notifyChanged() {
	r.notifier.Publish(ChangeEvent{Type: r.typeName})
}
