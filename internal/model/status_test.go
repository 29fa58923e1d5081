package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/talent-agency-service/internal/model"
)

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to model.ApplicationStatus
		want     bool
	}{
		{model.ApplicationPending, model.ApplicationReviewed, true},
		{model.ApplicationPending, model.ApplicationAccepted, true},
		{model.ApplicationPending, model.ApplicationRejected, true},
		{model.ApplicationReviewed, model.ApplicationAccepted, true},
		{model.ApplicationReviewed, model.ApplicationPending, false},
		{model.ApplicationAccepted, model.ApplicationRejected, false},
		{model.ApplicationRejected, model.ApplicationPending, false},
		{model.ApplicationAccepted, model.ApplicationAccepted, true},
		{model.ApplicationPending, "ARCHIVED", false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestCastingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to model.CastingStatus
		want     bool
	}{
		{model.CastingPending, model.CastingContacted, true},
		{model.CastingPending, model.CastingCancelled, true},
		{model.CastingPending, model.CastingInProgress, false},
		{model.CastingContacted, model.CastingInProgress, true},
		{model.CastingInProgress, model.CastingCompleted, true},
		{model.CastingInProgress, model.CastingCancelled, true},
		{model.CastingCompleted, model.CastingCancelled, false},
		{model.CastingCancelled, model.CastingPending, false},
		{model.CastingContacted, model.CastingContacted, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, model.ApplicationReviewed.Valid())
	assert.False(t, model.ApplicationStatus("reviewed").Valid())
	assert.True(t, model.CastingInProgress.Valid())
	assert.False(t, model.CastingStatus("").Valid())
}
