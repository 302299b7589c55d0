/*
Package models defines the data structures exchanged between repositories
and data clients.

Key Types:

Envelope:
Every client response wraps its payload together with response metadata.
Repositories project the payload and discard the rest:

	env, err := client.Get(ctx, "user-1", "")
	if err != nil {
	    return zero, err
	}
	user := env.Payload

Page:
Cursor-based list results:

	type Page[T any] struct {
	    Items   []T    // the current page, in store order
	    Cursor  string // opaque continuation token, empty on the last page
	    HasMore bool   // whether another page exists
	}

ListQuery / CountQuery:
Resolved query shapes handed to the client. A zero field is the explicit
"absent" value for that option; clients must not distinguish it from an
omitted argument.

Pipeline:
An ordered sequence of aggregation stages, opaque above the client:

	p := models.Pipeline{
	    {Name: "match", Spec: map[string]any{"status": "active"}},
	    {Name: "count"},
	}

These types provide a consistent interface across different client
implementations.
*/
package models
