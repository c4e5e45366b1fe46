package models

import (
	"time"

	"github.com/google/uuid"

	"demonym/pkg/nationality"
)

// Person is a directory record carrying a nationality field. The nationality
// column is nullable: a person may have no recorded nationality.
type Person struct {
	ID          uuid.UUID               `json:"id"`
	FullName    string                  `json:"full_name"`
	Nationality nationality.Nationality `json:"nationality"`
	CreatedAt   time.Time               `json:"created_at"`
}
