/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore

import "github.com/suparena/itemstore/models"

// callOptions collects the optional arguments of a repository call. Zero
// fields become the explicit absent values the client receives.
type callOptions struct {
	scope  string
	filter models.Filter
	sort   []models.SortField
	page   *models.PageOptions
}

// Option configures a single repository call.
type Option func(*callOptions)

// WithScope restricts the call to the named scope, such as a tenant or a
// logical collection partition. Applies to every operation.
func WithScope(scope string) Option {
	return func(o *callOptions) {
		o.scope = scope
	}
}

// WithFilter narrows List and Count results to items matching the criteria.
// Ignored by other operations.
func WithFilter(filter models.Filter) Option {
	return func(o *callOptions) {
		o.filter = filter
	}
}

// WithSort orders List results by the given fields, in slice order.
// Ignored by other operations.
func WithSort(fields ...models.SortField) Option {
	return func(o *callOptions) {
		o.sort = fields
	}
}

// WithPage applies cursor pagination to a List call.
// Ignored by other operations.
func WithPage(page models.PageOptions) Option {
	return func(o *callOptions) {
		o.page = &page
	}
}

func resolveOptions(opts []Option) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
