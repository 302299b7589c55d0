/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Envelope wraps a client response payload together with response metadata.
// The payload type P is whatever the operation returns: an item, a Page,
// a count, or a slice of aggregate records.
type Envelope[P any] struct {
	// Payload is the operation result.
	Payload P
	// RequestID correlates the response with the client request that produced it.
	RequestID string
	// Timestamp records when the client produced the response.
	Timestamp strfmt.DateTime
}

// NewEnvelope wraps a payload with a fresh request ID and the current time.
func NewEnvelope[P any](payload P) *Envelope[P] {
	return &Envelope[P]{
		Payload:   payload,
		RequestID: uuid.NewString(),
		Timestamp: strfmt.DateTime(time.Now().UTC()),
	}
}
