package model

import "slices"

// ApplicationStatus is the review state of an Application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationReviewed ApplicationStatus = "REVIEWED"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// CastingStatus is the progress state of a Casting request.
type CastingStatus string

const (
	CastingPending    CastingStatus = "PENDING"
	CastingContacted  CastingStatus = "CONTACTED"
	CastingInProgress CastingStatus = "IN_PROGRESS"
	CastingCompleted  CastingStatus = "COMPLETED"
	CastingCancelled  CastingStatus = "CANCELLED"
)

// transitions maps a state to the states reachable from it in one step.
// States without an entry are terminal.
type transitions[S ~string] map[S][]S

func (t transitions[S]) allows(from, to S) bool {
	if from == to {
		return true
	}
	return slices.Contains(t[from], to)
}

var applicationTransitions = transitions[ApplicationStatus]{
	ApplicationPending:  {ApplicationReviewed, ApplicationAccepted, ApplicationRejected},
	ApplicationReviewed: {ApplicationAccepted, ApplicationRejected},
}

var castingTransitions = transitions[CastingStatus]{
	CastingPending:    {CastingContacted, CastingCancelled},
	CastingContacted:  {CastingInProgress, CastingCancelled},
	CastingInProgress: {CastingCompleted, CastingCancelled},
}

// ApplicationStatuses lists every known application status in lifecycle order.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected}
}

// CastingStatuses lists every known casting status in lifecycle order.
func CastingStatuses() []CastingStatus {
	return []CastingStatus{CastingPending, CastingContacted, CastingInProgress, CastingCompleted, CastingCancelled}
}

func (s ApplicationStatus) Valid() bool { return slices.Contains(ApplicationStatuses(), s) }

// CanTransitionTo reports whether an application may move from s to next.
// Re-applying the current status is always allowed.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return s.Valid() && next.Valid() && applicationTransitions.allows(s, next)
}

func (s CastingStatus) Valid() bool { return slices.Contains(CastingStatuses(), s) }

// CanTransitionTo reports whether a casting may move from s to next.
// Re-applying the current status is always allowed.
func (s CastingStatus) CanTransitionTo(next CastingStatus) bool {
	return s.Valid() && next.Valid() && castingTransitions.allows(s, next)
}
