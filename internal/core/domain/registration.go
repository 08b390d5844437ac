package domain

import (
	"errors"
	"time"
)

// RegistrationStatus represents the triage state of a registration.
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
)

var ErrRegistrationNotFound = errors.New("registration not found")
var ErrUnknownStatus = errors.New("unknown registration status")
var ErrForbidden = errors.New("access forbidden")

// knownStatuses is the complete set of triage states.
var knownStatuses = map[RegistrationStatus]struct{}{
	StatusPending:  {},
	StatusApproved: {},
	StatusRejected: {},
}

// IsValid reports whether s is a known triage status.
func (s RegistrationStatus) IsValid() bool {
	_, ok := knownStatuses[s]
	return ok
}

// CanTransitionTo reports whether a transition from s to next is permitted.
// Every known status is reachable from every other; administrators may
// re-triage in either direction. A same-status transition is a permitted
// no-op rather than an error.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	return s.IsValid() && next.IsValid()
}

// Registration is a single tournament or contact submission. Status is the
// only field that mutates after creation.
type Registration struct {
	ID            string             `json:"id" bson:"_id,omitempty"`
	EventID       string             `json:"event_id,omitempty" bson:"event_id,omitempty"`
	SchoolID      string             `json:"school_id,omitempty" bson:"school_id,omitempty"`
	FullName      string             `json:"full_name" bson:"full_name"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Organization  string             `json:"organization,omitempty" bson:"organization,omitempty"`
	Role          string             `json:"role" bson:"role"`
	Interest      string             `json:"interest" bson:"interest"`
	Student1Name  string             `json:"student1_name,omitempty" bson:"student1_name,omitempty"`
	Student1Email string             `json:"student1_email,omitempty" bson:"student1_email,omitempty"`
	Student2Name  string             `json:"student2_name,omitempty" bson:"student2_name,omitempty"`
	Student2Email string             `json:"student2_email,omitempty" bson:"student2_email,omitempty"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Status        RegistrationStatus `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// RegistrationStats are the per-status totals shown on the dashboards. They
// are always recomputed from an authoritative re-read, never patched locally.
type RegistrationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// CountByStatus computes dashboard totals over a collection snapshot.
func CountByStatus(regs []*Registration) RegistrationStats {
	stats := RegistrationStats{Total: len(regs)}
	for _, r := range regs {
		switch r.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// StatusChange records a single applied transition for the audit trail.
type StatusChange struct {
	RegistrationID string             `json:"registration_id" bson:"registration_id"`
	From           RegistrationStatus `json:"from" bson:"from"`
	To             RegistrationStatus `json:"to" bson:"to"`
	Actor          string             `json:"actor" bson:"actor"`
	At             time.Time          `json:"at" bson:"at"`
}
