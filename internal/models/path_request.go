package models

import "encoding/json"

// SavePathRequest represents the request body for saving a path.
//
// Name is raw JSON so a non-string value degrades to the default name instead
// of failing the whole request. Waypoints elements stay raw too: clients send
// them as objects or arrays and the waypoint package sorts that out. Points
// is a legacy alias for Waypoints kept for older clients.
type SavePathRequest struct {
	Name      json.RawMessage   `json:"name"`
	Params    json.RawMessage   `json:"params"`
	Waypoints []json.RawMessage `json:"waypoints"`
	Points    []json.RawMessage `json:"points"`
	UserEmail *string           `json:"user_email,omitempty" binding:"omitempty,email"`
}
