package models

import (
	"time"

	id "rollbook/pkg/domain"
)

// Class participates in zero or more enrollments.
type Class struct {
	ID          id.ClassID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
