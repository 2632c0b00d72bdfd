package domain

import "time"

// Category is the demo entity used to exercise the plain CRUD pipeline.
type Category struct {
	ID          string
	Name        string
	Priority    int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
