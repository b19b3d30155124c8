package models

import "waypath-be/internal/entities"

// TelemetryResponse is one synthetic telemetry frame
type TelemetryResponse struct {
	Position      entities.Waypoint   `json:"position"`
	Heading       entities.Waypoint   `json:"heading"`
	Velocity      entities.Waypoint   `json:"velocity"`
	Accelerometer entities.Waypoint   `json:"accelerometer"`
	Trail         []entities.Waypoint `json:"trail"`
	Timestamp     string              `json:"timestamp"`
}
