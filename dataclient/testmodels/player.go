package testmodels

import "github.com/go-openapi/strfmt"

type Player struct {

	// Unique identifier for the player.
	// Required: true
	ID string `json:"Id"`

	// Display name of the player.
	// Required: true
	Name string `json:"Name"`

	// Current rating of the player.
	Rating int `json:"Rating,omitempty"`

	// Competitive status, e.g. "active" or "retired".
	Status string `json:"Status,omitempty"`

	// Timestamp when the player record was created.
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"CreatedAt,omitempty"`
}
