package entity

import "time"

// Tender is a procurement request posted by its creator.
type Tender struct {
	ID          string
	CreatorID   string
	Title       string
	Description string
	Budget      float64
	Deadline    time.Time
	CreatedAt   time.Time

	// Owner profile fields, populated only by queries that join users.
	OwnerCompanyName string
	OwnerIndustry    string

	Applications []Application
}

// OwnerID returns the identity allowed to manage the tender and its applications.
func (t *Tender) OwnerID() string { return t.CreatorID }
