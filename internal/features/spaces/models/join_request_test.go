package spaces_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_IsReapplyEligible_RejectedRequestWaitsOutTheCooldown(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	request := JoinRequest{
		Status:    JoinRequestStatusRejected,
		UpdatedAt: now.Add(-RejectionCooldown + time.Minute),
	}
	assert.False(t, request.IsReapplyEligible(now), "one minute short of the cool-down")

	request.UpdatedAt = now.Add(-RejectionCooldown)
	assert.True(t, request.IsReapplyEligible(now), "exactly at the cool-down boundary")

	request.UpdatedAt = now.Add(-RejectionCooldown - time.Hour)
	assert.True(t, request.IsReapplyEligible(now), "past the cool-down")
}

func Test_IsReapplyEligible_OnlyRejectedRequestsQualify(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	longAgo := now.Add(-30 * 24 * time.Hour)

	pending := JoinRequest{Status: JoinRequestStatusPending, UpdatedAt: longAgo}
	assert.False(t, pending.IsReapplyEligible(now))

	approved := JoinRequest{Status: JoinRequestStatusApproved, UpdatedAt: longAgo}
	assert.False(t, approved.IsReapplyEligible(now))
}

func Test_RejectionCooldown_IsSevenDays(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, RejectionCooldown)
}
