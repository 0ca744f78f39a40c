package entity

import "time"

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// IsDecision reports whether s is a status a tender owner may set.
func (s ApplicationStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Application is a proposal submitted against a tender.
type Application struct {
	ID           string
	TenderID     string
	ApplicantID  string
	ProposalText string
	Status       ApplicationStatus
	CreatedAt    time.Time

	// Parent tender fields, populated by applicant-side listings.
	TenderTitle    string
	TenderDeadline time.Time
}
