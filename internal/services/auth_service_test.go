package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "user@example.com", NormalizeEmail("user@example.com"))
}

func TestLockoutRemainingMinutes(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until *time.Time
		want  int
	}{
		{"no lockout", nil, 0},
		{"expired lockout", ptr(now.Add(-time.Minute)), 0},
		{"boundary is expired", ptr(now), 0},
		{"full hour", ptr(now.Add(60 * time.Minute)), 60},
		{"partial minute rounds up", ptr(now.Add(30*time.Minute + time.Second)), 31},
		{"under a minute rounds to one", ptr(now.Add(10 * time.Second)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lockoutRemainingMinutes(tt.until, now))
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
