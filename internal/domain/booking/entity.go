package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLicenseExpiresTooEarly = errors.New("license must be valid through the last rental day")

// Booking binds a customer to a car for a closed date range. The license
// fields are an audit copy taken at creation time; they do not follow later
// changes to the customer's stored license.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	carID     uuid.UUID
	period    DateRange
	status    Status
	price     Money
	license   License
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking validates the proposal-level invariants (range ordering via
// DateRange, license coverage through the last rental day) and produces a
// booking in the confirmed state. Conflict checks against other bookings are
// the resolver's job, not the entity's.
func NewBooking(userID, carID uuid.UUID, period DateRange, license License, price Money) (*Booking, error) {
	if !license.Covers(period) {
		return nil, ErrLicenseExpiresTooEarly
	}

	return &Booking{
		id:      uuid.New(),
		userID:  userID,
		carID:   carID,
		period:  period,
		status:  StatusConfirmed,
		price:   price,
		license: license,
	}, nil
}

func ReconstructBooking(
	id, userID, carID uuid.UUID,
	period DateRange,
	status Status,
	price Money,
	license License,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		carID:     carID,
		period:    period,
		status:    status,
		price:     price,
		license:   license,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCanceled() bool {
	return b.status == StatusCanceled
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) CarID() uuid.UUID     { return b.carID }
func (b *Booking) Period() DateRange    { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Price() Money         { return b.price }
func (b *Booking) License() License     { return b.license }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
