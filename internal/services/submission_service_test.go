package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingCooldown(t *testing.T) {
	window := 12 * time.Hour
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		want time.Duration
	}{
		{"just submitted", now, window},
		{"one hour in", now.Add(-time.Hour), 11 * time.Hour},
		{"one second before expiry", now.Add(-window + time.Second), time.Second},
		{"exactly expired", now.Add(-window), 0},
		{"long expired", now.Add(-48 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, remainingCooldown(window, tt.last, now))
		})
	}
}

func TestCeilSeconds(t *testing.T) {
	assert.Equal(t, int64(0), ceilSeconds(0))
	assert.Equal(t, int64(1), ceilSeconds(time.Millisecond))
	assert.Equal(t, int64(1), ceilSeconds(time.Second))
	assert.Equal(t, int64(2), ceilSeconds(time.Second+time.Nanosecond))
	assert.Equal(t, int64(43200), ceilSeconds(12*time.Hour))
}
