package service

import (
	"math"
	"time"

	"waypath-be/internal/entities"
	"waypath-be/internal/models"
)

// TelemetryService produces synthetic telemetry frames. There is no vehicle
// behind this endpoint; the trail is a fixed trigonometric curve so the
// dashboard has something to draw.
type TelemetryService interface {
	Latest() *models.TelemetryResponse
}

type telemetryService struct{}

// NewTelemetryService creates a new telemetry service
func NewTelemetryService() TelemetryService {
	return &telemetryService{}
}

// Latest returns the current synthetic frame
func (s *telemetryService) Latest() *models.TelemetryResponse {
	trail := make([]entities.Waypoint, 0, 299)
	for i := 1; i < 300; i++ {
		f := float64(i)
		trail = append(trail, entities.Waypoint{
			X: math.Sin(f/5) * f / 50,
			Y: math.Cos(f/6) * f / 60,
			Z: math.Sin(f/7) * 0.6,
		})
	}

	return &models.TelemetryResponse{
		Position:      trail[len(trail)-1],
		Heading:       entities.Waypoint{X: 0.10, Y: 0.00, Z: 0.20},
		Velocity:      entities.Waypoint{X: 0.40, Y: -0.10, Z: 0.00},
		Accelerometer: entities.Waypoint{X: 0.02, Y: 0.01, Z: 0.98},
		Trail:         trail,
		Timestamp:     time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
}
