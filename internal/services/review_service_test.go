package services

import (
	"testing"

	"takaearn_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from models.SubmissionStatus
		to   models.SubmissionStatus
		want bool
	}{
		{"pending to received", models.SubmissionStatusPending, models.SubmissionStatusReceived, true},
		{"pending to approved", models.SubmissionStatusPending, models.SubmissionStatusApproved, true},
		{"pending to rejected", models.SubmissionStatusPending, models.SubmissionStatusRejected, true},
		{"received to approved", models.SubmissionStatusReceived, models.SubmissionStatusApproved, true},
		{"received to rejected", models.SubmissionStatusReceived, models.SubmissionStatusRejected, true},
		{"received to received", models.SubmissionStatusReceived, models.SubmissionStatusReceived, false},
		{"approved is terminal", models.SubmissionStatusApproved, models.SubmissionStatusRejected, false},
		{"rejected is terminal", models.SubmissionStatusRejected, models.SubmissionStatusApproved, false},
		{"no transition to pending", models.SubmissionStatusReceived, models.SubmissionStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}

func TestStatusForAction(t *testing.T) {
	assert.Equal(t, models.SubmissionStatusRejected, statusForAction("reject"))
	assert.Equal(t, models.SubmissionStatusReceived, statusForAction("receive"))
	assert.Equal(t, models.SubmissionStatusApproved, statusForAction("approve"))
	assert.Equal(t, models.SubmissionStatus(""), statusForAction("escalate"))
}
