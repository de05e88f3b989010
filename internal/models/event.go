package models

import "time"

// Catalog event types.
const (
	EventRustaceanCreated = "rustacean.created"
	EventRustaceanUpdated = "rustacean.updated"
	EventRustaceanDeleted = "rustacean.deleted"
	EventCrateCreated     = "crate.created"
	EventCrateUpdated     = "crate.updated"
	EventCrateDeleted     = "crate.deleted"
)

// Event describes a change to a rustacean or crate.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   int       `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
