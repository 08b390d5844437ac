package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type submitRegistrationRequest struct {
	FullName      string `json:"full_name"      validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	Phone         string `json:"phone"          validate:"omitempty"`
	Organization  string `json:"organization"   validate:"required"`
	Role          string `json:"role"           validate:"required,oneof=teacher principal parent student other"`
	Student1Name  string `json:"student1_name"  validate:"required"`
	Student1Email string `json:"student1_email" validate:"omitempty,email"`
	Student2Name  string `json:"student2_name"  validate:"omitempty"`
	Student2Email string `json:"student2_email" validate:"omitempty,email"`
	Notes         string `json:"notes"          validate:"omitempty"`
}

type submitContactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type registrationResponse struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id,omitempty"`
	SchoolID      string    `json:"school_id,omitempty"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Organization  string    `json:"organization,omitempty"`
	Role          string    `json:"role"`
	Interest      string    `json:"interest"`
	Student1Name  string    `json:"student1_name,omitempty"`
	Student1Email string    `json:"student1_email,omitempty"`
	Student2Name  string    `json:"student2_name,omitempty"`
	Student2Email string    `json:"student2_email,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type registrationStatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type registrationListResponse struct {
	Items []registrationResponse    `json:"items"`
	Stats registrationStatsResponse `json:"stats"`
}

type schoolRegistrationResponse struct {
	registrationResponse
	EventTitle string     `json:"event_title,omitempty"`
	EventDate  *time.Time `json:"event_date,omitempty"`
}

type schoolRegistrationListResponse struct {
	Items []schoolRegistrationResponse `json:"items"`
}
