package models

import (
	"time"

	id "rollbook/pkg/domain"
)

// School owns zero or more people. Deleting a school removes its people and
// transitively their enrollments; the services enforce the cascade explicitly
// so memory and SQL stores behave identically.
type School struct {
	ID        id.SchoolID `json:"id"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
