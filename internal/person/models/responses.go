package models

import "time"

// PersonResponse is returned to callers; the nationality name is resolved
// from the table at read time and omitted when the code is unknown.
type PersonResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Nationality     string    `json:"nationality,omitempty"`
	NationalityName string    `json:"nationality_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToResponse converts a person record, deriving the display name.
func (p *Person) ToResponse() PersonResponse {
	name, _ := p.Nationality.Name()
	return PersonResponse{
		ID:              p.ID.String(),
		FullName:        p.FullName,
		Nationality:     p.Nationality.Code(),
		NationalityName: name,
		CreatedAt:       p.CreatedAt,
	}
}
