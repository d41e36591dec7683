package domain

import (
	"time"

	"github.com/google/uuid"
)

// Barber represents a catalog entry for a barber.
// The catalog is seeded at deployment time and read-only at runtime.
type Barber struct {
	ID          uuid.UUID
	Name        string
	Avatar      *string
	Specialties []string
	Rating      float64
	Bio         string
	CreatedAt   time.Time
}

// Service represents a catalog entry for an offered service
type Service struct {
	ID          uuid.UUID
	Name        string
	Duration    string // человекочитаемая длительность, например "30 min"
	Price       float64
	Description string
	CreatedAt   time.Time
}
