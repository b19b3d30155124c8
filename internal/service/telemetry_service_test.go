package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTelemetryLatest(t *testing.T) {
	svc := NewTelemetryService()

	frame := svc.Latest()
	require.Len(t, frame.Trail, 299)
	require.Equal(t, frame.Trail[len(frame.Trail)-1], frame.Position)

	_, err := time.Parse("2006-01-02T15:04:05Z", frame.Timestamp)
	require.NoError(t, err)

	// The trail is a fixed curve; two frames differ only in timestamp.
	again := svc.Latest()
	require.Equal(t, frame.Trail, again.Trail)
}
