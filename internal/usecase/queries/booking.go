package queries

import (
	"context"
	"time"

	"carental/internal/infra"
	"carental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccessDenied = errs.New("booking access denied")
)

// Read models (DTO for read side)
type BookingView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	CarID             uuid.UUID `json:"car_id"`
	CarBrand          string    `json:"car_brand"`
	CarModel          string    `json:"car_model"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Status            string    `json:"status"`
	PriceCents        int32     `json:"price_cents"`
	LicenseNumber     string    `json:"license_number"`
	LicenseValidUntil time.Time `json:"license_valid_until"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	CarID      uuid.UUID `json:"car_id"`
	CarBrand   string    `json:"car_brand"`
	CarModel   string    `json:"car_model"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status"`
	PriceCents int32     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConfirmedBookingItem is the anonymized occupancy projection. It carries no
// customer identifiers so it can back public availability views.
type ConfirmedBookingItem struct {
	CarID     uuid.UUID `json:"car_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindConfirmedOverlapping(ctx context.Context, from, to time.Time) ([]*ConfirmedBookingItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*BookingView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	ListConfirmedInRange(ctx context.Context, from, to time.Time) ([]*ConfirmedBookingItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	if view.UserID != actorID {
		return nil, ErrBookingAccessDenied
	}
	return view, nil
}

// GetByIDSystem skips the ownership check. Reserved for internal
// read-after-write lookups, never exposed through a handler.
func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) ListConfirmedInRange(ctx context.Context, from, to time.Time) ([]*ConfirmedBookingItem, error) {
	return q.store.FindConfirmedOverlapping(ctx, from, to)
}
