package commands

import (
	"time"

	"carental/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type CarSnapshot struct {
	ID             uuid.UUID
	Brand          string
	Model          string
	Stock          int32
	PricePeakCents int32
	PriceMidCents  int32
	PriceOffCents  int32
}

type UserSnapshot struct {
	ID                uuid.UUID
	Email             string
	Role              string
	LicenseNumber     *string
	LicenseValidUntil *time.Time
	IsActive          bool
}

// BookingRecord is the write-side projection of a stored booking used by the
// conflict checks. It carries only what the resolver needs to compare ranges.
type BookingRecord struct {
	ID        uuid.UUID
	CarID     uuid.UUID
	Period    booking.DateRange
	Status    booking.Status
	CreatedAt time.Time
}
