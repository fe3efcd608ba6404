package domain

import (
	"slices"
)

// ReleaseStatus represents the lifecycle state of a release
type ReleaseStatus string

const (
	ReleaseStatusDraft     ReleaseStatus = "draft"
	ReleaseStatusScheduled ReleaseStatus = "scheduled"
	ReleaseStatusPublished ReleaseStatus = "published"
	ReleaseStatusRejected  ReleaseStatus = "rejected"
)

// releaseTransitions lists the states reachable from each status.
// Published is terminal; rejected can only go back to draft for resubmission.
var releaseTransitions = map[ReleaseStatus][]ReleaseStatus{
	ReleaseStatusDraft:     {ReleaseStatusScheduled, ReleaseStatusPublished, ReleaseStatusRejected},
	ReleaseStatusScheduled: {ReleaseStatusDraft, ReleaseStatusPublished, ReleaseStatusRejected},
	ReleaseStatusPublished: {},
	ReleaseStatusRejected:  {ReleaseStatusDraft},
}

// Valid reports whether s is a known release status
func (s ReleaseStatus) Valid() bool {
	_, ok := releaseTransitions[s]
	return ok
}

// AllowedTransitions returns the statuses reachable from s
func (s ReleaseStatus) AllowedTransitions() []ReleaseStatus {
	return slices.Clone(releaseTransitions[s])
}

// CanTransitionTo reports whether moving from s to next is allowed by the transition table.
// Moderation requirements are checked separately by ValidateTransition.
func (s ReleaseStatus) CanTransitionTo(next ReleaseStatus) bool {
	return slices.Contains(releaseTransitions[s], next)
}

// ValidateTransition checks a status change against the transition table and the
// rule that a release may only be published once moderation has approved it.
// An unchanged status is not a transition and always passes.
func ValidateTransition(from, to ReleaseStatus, moderation ModerationStatus) error {
	if from == to {
		return nil
	}
	if !to.Valid() {
		return NewValidationError("status", "must be one of draft, scheduled, published, rejected")
	}
	if !from.CanTransitionTo(to) {
		return &TransitionError{From: from, To: to, Allowed: from.AllowedTransitions()}
	}
	if to == ReleaseStatusPublished && moderation != ModerationStatusApproved {
		return &TransitionError{
			From:    from,
			To:      to,
			Allowed: from.AllowedTransitions(),
			Reason:  "moderation has not approved this release",
		}
	}
	return nil
}

// ModerationStatus represents the internal review gate of a release
type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

// Valid reports whether s is a known moderation status
func (s ModerationStatus) Valid() bool {
	return s == ModerationStatusPending ||
		s == ModerationStatusApproved ||
		s == ModerationStatusRejected
}

// DistributionStatus represents the delivery-to-platforms pipeline state of a release
type DistributionStatus string

const (
	DistributionStatusNotStarted DistributionStatus = "not_started"
	DistributionStatusInProgress DistributionStatus = "in_progress"
	DistributionStatusCompleted  DistributionStatus = "completed"
	DistributionStatusFailed     DistributionStatus = "failed"
)

// Valid reports whether s is a known distribution status
func (s DistributionStatus) Valid() bool {
	return s == DistributionStatusNotStarted ||
		s == DistributionStatusInProgress ||
		s == DistributionStatusCompleted ||
		s == DistributionStatusFailed
}

// ReleaseType represents the format of a release
type ReleaseType string

const (
	ReleaseTypeSingle      ReleaseType = "single"
	ReleaseTypeEP          ReleaseType = "ep"
	ReleaseTypeAlbum       ReleaseType = "album"
	ReleaseTypeCompilation ReleaseType = "compilation"
)

// Valid reports whether t is a known release type
func (t ReleaseType) Valid() bool {
	return t == ReleaseTypeSingle ||
		t == ReleaseTypeEP ||
		t == ReleaseTypeAlbum ||
		t == ReleaseTypeCompilation
}

// ActivityType tags a user activity entry
type ActivityType string

const (
	ActivityAccountCreated  ActivityType = "account-created"
	ActivityProfileUpdated  ActivityType = "profile-updated"
	ActivityProfileCreated  ActivityType = "profile-created"
	ActivitySettingsUpdated ActivityType = "settings-updated"
	ActivityPasswordChanged ActivityType = "password-changed"
	ActivityReleaseCreated  ActivityType = "release-created"
	ActivityReleaseUpdated  ActivityType = "release-updated"
	ActivityTrackAdded      ActivityType = "track-added"
	ActivityStreamMilestone ActivityType = "stream-milestone"
	ActivityNewFollower     ActivityType = "new-follower"
	ActivityPayment         ActivityType = "payment"
)

// DefaultActivityIcon is shown for activity tags outside the known set
const DefaultActivityIcon = "activity"

var activityIcons = map[ActivityType]string{
	ActivityAccountCreated:  "user-plus",
	ActivityProfileUpdated:  "user",
	ActivityProfileCreated:  "user-check",
	ActivitySettingsUpdated: "settings",
	ActivityPasswordChanged: "lock",
	ActivityReleaseCreated:  "disc",
	ActivityReleaseUpdated:  "edit",
	ActivityTrackAdded:      "music",
	ActivityStreamMilestone: "trending-up",
	ActivityNewFollower:     "users",
	ActivityPayment:         "dollar-sign",
}

// Valid reports whether t is in the closed activity set
func (t ActivityType) Valid() bool {
	_, ok := activityIcons[t]
	return ok
}

// Icon returns the display icon for the activity type.
// Rows written before the set was closed may carry other tags; those get the generic icon.
func (t ActivityType) Icon() string {
	if icon, ok := activityIcons[t]; ok {
		return icon
	}
	return DefaultActivityIcon
}

// AssetKind identifies an object-storage bucket
type AssetKind string

const (
	AssetKindCoverArt  AssetKind = "cover-art"
	AssetKindAvatar    AssetKind = "avatar"
	AssetKindSignature AssetKind = "signature"
)

// Valid reports whether k is a known asset kind
func (k AssetKind) Valid() bool {
	return k == AssetKindCoverArt || k == AssetKindAvatar || k == AssetKindSignature
}

// NotificationPreferences holds the email notification switches stored on the identity
type NotificationPreferences struct {
	Releases  bool `json:"releases"`
	Analytics bool `json:"analytics"`
	Payments  bool `json:"payments"`
	Marketing bool `json:"marketing"`
}

// DateLayout is the calendar date format used for release dates
const DateLayout = "2006-01-02"
