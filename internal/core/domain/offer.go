package domain

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a reusable campaign template. Tests reference an offer weakly:
// deleting the offer clears the reference but leaves the tests in place.
type Offer struct {
	ID              uuid.UUID
	WorkspaceID     uuid.UUID
	Name            string
	Niche           string
	LibraryLink     string
	LandingPageLink string
	CheckoutLink    string
	CreatedAt       time.Time
}
