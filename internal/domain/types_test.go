package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseStatus_CanTransitionTo(t *testing.T) {
	all := []ReleaseStatus{
		ReleaseStatusDraft,
		ReleaseStatusScheduled,
		ReleaseStatusPublished,
		ReleaseStatusRejected,
	}
	allowed := map[ReleaseStatus][]ReleaseStatus{
		ReleaseStatusDraft:     {ReleaseStatusScheduled, ReleaseStatusPublished, ReleaseStatusRejected},
		ReleaseStatusScheduled: {ReleaseStatusDraft, ReleaseStatusPublished, ReleaseStatusRejected},
		ReleaseStatusPublished: {},
		ReleaseStatusRejected:  {ReleaseStatusDraft},
	}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, a := range allowed[from] {
				if a == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestReleaseStatus_AllowedTransitionsIsACopy(t *testing.T) {
	next := ReleaseStatusDraft.AllowedTransitions()
	require.Len(t, next, 3)
	next[0] = ReleaseStatusRejected

	assert.Equal(t, ReleaseStatusScheduled, ReleaseStatusDraft.AllowedTransitions()[0])
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name       string
		from       ReleaseStatus
		to         ReleaseStatus
		moderation ModerationStatus
		wantErr    error
		validation bool
	}{
		{
			name:       "unchanged status is not a transition",
			from:       ReleaseStatusPublished,
			to:         ReleaseStatusPublished,
			moderation: ModerationStatusApproved,
		},
		{
			name:       "draft to scheduled",
			from:       ReleaseStatusDraft,
			to:         ReleaseStatusScheduled,
			moderation: ModerationStatusPending,
		},
		{
			name:       "scheduled to published when approved",
			from:       ReleaseStatusScheduled,
			to:         ReleaseStatusPublished,
			moderation: ModerationStatusApproved,
		},
		{
			name:       "draft to published while pending",
			from:       ReleaseStatusDraft,
			to:         ReleaseStatusPublished,
			moderation: ModerationStatusPending,
			wantErr:    ErrInvalidTransition,
		},
		{
			name:       "scheduled to published when moderation rejected",
			from:       ReleaseStatusScheduled,
			to:         ReleaseStatusPublished,
			moderation: ModerationStatusRejected,
			wantErr:    ErrInvalidTransition,
		},
		{
			name:       "published is terminal",
			from:       ReleaseStatusPublished,
			to:         ReleaseStatusDraft,
			moderation: ModerationStatusApproved,
			wantErr:    ErrInvalidTransition,
		},
		{
			name:       "rejected back to draft",
			from:       ReleaseStatusRejected,
			to:         ReleaseStatusDraft,
			moderation: ModerationStatusRejected,
		},
		{
			name:       "rejected to scheduled",
			from:       ReleaseStatusRejected,
			to:         ReleaseStatusScheduled,
			moderation: ModerationStatusRejected,
			wantErr:    ErrInvalidTransition,
		},
		{
			name:       "unknown target status",
			from:       ReleaseStatusDraft,
			to:         ReleaseStatus("archived"),
			moderation: ModerationStatusPending,
			validation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to, tt.moderation)
			switch {
			case tt.validation:
				assert.True(t, IsValidationError(err))
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				var te *TransitionError
				require.True(t, errors.As(err, &te))
				assert.Equal(t, tt.from, te.From)
				assert.Equal(t, tt.to, te.To)
				assert.Equal(t, tt.from.AllowedTransitions(), te.Allowed)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransitionError_Error(t *testing.T) {
	err := &TransitionError{
		From:    ReleaseStatusDraft,
		To:      ReleaseStatusPublished,
		Allowed: ReleaseStatusDraft.AllowedTransitions(),
		Reason:  "moderation has not approved this release",
	}
	assert.Equal(t,
		"cannot move release from draft to published: moderation has not approved this release (allowed: scheduled, published, rejected)",
		err.Error())

	terminal := &TransitionError{From: ReleaseStatusPublished, To: ReleaseStatusDraft}
	assert.Equal(t, "cannot move release from published to draft (no further transitions allowed)", terminal.Error())
}

func TestActivityType_Icon(t *testing.T) {
	tests := []struct {
		activity ActivityType
		icon     string
		valid    bool
	}{
		{ActivityAccountCreated, "user-plus", true},
		{ActivityProfileUpdated, "user", true},
		{ActivityProfileCreated, "user-check", true},
		{ActivitySettingsUpdated, "settings", true},
		{ActivityPasswordChanged, "lock", true},
		{ActivityReleaseCreated, "disc", true},
		{ActivityReleaseUpdated, "edit", true},
		{ActivityTrackAdded, "music", true},
		{ActivityStreamMilestone, "trending-up", true},
		{ActivityNewFollower, "users", true},
		{ActivityPayment, "dollar-sign", true},
		{ActivityType("playlist-add"), DefaultActivityIcon, false},
		{ActivityType(""), DefaultActivityIcon, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.activity), func(t *testing.T) {
			assert.Equal(t, tt.icon, tt.activity.Icon())
			assert.Equal(t, tt.valid, tt.activity.Valid())
		})
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, ModerationStatusApproved.Valid())
	assert.False(t, ModerationStatus("maybe").Valid())
	assert.True(t, DistributionStatusInProgress.Valid())
	assert.False(t, DistributionStatus("queued").Valid())
	assert.True(t, ReleaseTypeCompilation.Valid())
	assert.False(t, ReleaseType("mixtape").Valid())
	assert.True(t, AssetKindSignature.Valid())
	assert.False(t, AssetKind("video").Valid())
	assert.True(t, ReleaseStatusRejected.Valid())
	assert.False(t, ReleaseStatus("").Valid())
}
