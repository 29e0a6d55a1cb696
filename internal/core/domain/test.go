package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestStatus is the decision recorded against a campaign test.
type TestStatus string

const (
	StatusScale TestStatus = "Scale"
	StatusPause TestStatus = "Pause"
	StatusStop  TestStatus = "Stop"
)

// Valid reports whether s is one of the known statuses.
func (s TestStatus) Valid() bool {
	switch s {
	case StatusScale, StatusPause, StatusStop:
		return true
	}
	return false
}

// Test represents one run of a marketing campaign. Monetary amounts are
// decimals; raw counters are plain integers. Performance ratios are never
// stored, they are derived on demand (see metrics.go).
type Test struct {
	ID             uuid.UUID
	WorkspaceID    uuid.UUID
	OfferID        *uuid.UUID
	StartDate      time.Time
	ProductName    string
	Niche          string
	TrafficSource  string
	LandingPageURL string
	InvestedAmount decimal.Decimal
	ReturnValue    decimal.Decimal
	Impressions    int64
	Clicks         int64
	Conversions    int64
	Status         TestStatus
	Observations   string
	CreatedAt      time.Time
}
