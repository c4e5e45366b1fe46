package models

import (
	"strings"

	"demonym/internal/sentinel"
)

// CreatePersonRequest is the transport payload for creating a person.
// The nationality code is stored as-is; codes absent from the table are
// accepted and simply resolve no display name.
type CreatePersonRequest struct {
	FullName    string `json:"full_name"`
	Nationality string `json:"nationality"`
}

// Normalize trims input for stable validation and storage.
func (r *CreatePersonRequest) Normalize() {
	if r == nil {
		return
	}
	r.FullName = strings.TrimSpace(r.FullName)
	r.Nationality = strings.ToUpper(strings.TrimSpace(r.Nationality))
}

// Validate enforces transport-level invariants.
func (r *CreatePersonRequest) Validate() error {
	if r == nil {
		return sentinel.ErrInvalidInput
	}
	if r.FullName == "" {
		return sentinel.ErrInvalidInput
	}
	if len(r.FullName) > 256 {
		return sentinel.ErrInvalidInput
	}
	return nil
}
