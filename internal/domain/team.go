package domain

import "time"

// TeamMember is a society office bearer for a given year.
type TeamMember struct {
	ID           string
	Name         string
	Position     string
	Year         string
	DisplayOrder int
	ImageURL     string
	CreatedAt    time.Time
}
