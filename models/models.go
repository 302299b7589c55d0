/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

// Filter maps field names to match criteria. Repositories treat it as
// opaque; interpretation belongs to the client.
type Filter map[string]any

// SortOrder is the direction of a sort field.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortField is one (field, direction) pair. The order of a []SortField
// is significant and must be preserved end to end.
type SortField struct {
	Field string
	Order SortOrder
}

// PageOptions requests a page of results.
type PageOptions struct {
	// Cursor is the continuation token of a previous Page; empty starts
	// from the beginning.
	Cursor string
	// Limit caps the number of items per page. Zero lets the client choose.
	Limit int32
}

// ListQuery is the resolved argument set for a List call. Zero fields are
// the explicit absent values: a nil Filter means no filtering, a nil Sort
// means store order, a nil Page means client-default pagination, an empty
// Scope means the unscoped collection.
type ListQuery struct {
	Scope  string
	Filter Filter
	Sort   []SortField
	Page   *PageOptions
}

// CountQuery is the resolved argument set for a Count call.
type CountQuery struct {
	Scope  string
	Filter Filter
}

// Record is a single aggregate result row.
type Record map[string]any

// Empty is the payload of responses that carry no data, such as Delete.
type Empty struct{}
