package entities

import (
	"encoding/json"
	"time"
)

// Waypoint is one 3D coordinate in a path. Missing components are stored
// as 0, never null.
type Waypoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Path represents a stored waypoint path in the database. Params and
// Waypoints are kept as raw JSON: params is opaque metadata stored verbatim,
// waypoints is the canonical ordered list written at ingestion time.
type Path struct {
	ID        int64           `json:"id"`
	UserEmail *string         `json:"user_email"` // Pointer allows nil (anonymous paths)
	Name      string          `json:"name"`
	Params    json.RawMessage `json:"params"`
	Waypoints json.RawMessage `json:"waypoints"`
	CreatedAt time.Time       `json:"created_at"`
}
