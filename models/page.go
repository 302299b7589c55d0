/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

// Page is one page of list results.
type Page[T any] struct {
	// Items holds the page contents in the order the client produced them.
	Items []T
	// Cursor is an opaque continuation token for the next page.
	// Empty when HasMore is false.
	Cursor string
	// HasMore reports whether another page exists after this one.
	HasMore bool
}
