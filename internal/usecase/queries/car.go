package queries

import (
	"context"
	"time"

	"carental/internal/domain/booking"
	"carental/internal/domain/car"
	"carental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrInvalidAvailabilityRange = errs.New("invalid availability range")

type CarView struct {
	ID             uuid.UUID `json:"id"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Stock          int32     `json:"stock"`
	PricePeakCents int32     `json:"price_peak_cents"`
	PriceMidCents  int32     `json:"price_mid_cents"`
	PriceOffCents  int32     `json:"price_off_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AvailableCarView extends CarView with range-scoped data: how many units
// remain free over the requested dates and what the rental would cost.
type AvailableCarView struct {
	ID              uuid.UUID `json:"id"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	Stock           int32     `json:"stock"`
	PricePeakCents  int32     `json:"price_peak_cents"`
	PriceMidCents   int32     `json:"price_mid_cents"`
	PriceOffCents   int32     `json:"price_off_cents"`
	Available       int32     `json:"available"`
	TotalPriceCents int64     `json:"total_price_cents"`
	AvgPerDayCents  int64     `json:"avg_per_day_cents"`
}

type CarReadStore interface {
	FindAll(ctx context.Context) ([]*CarView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type CarQueries interface {
	List(ctx context.Context) ([]*CarView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	ListAvailable(ctx context.Context, from, to time.Time) ([]*AvailableCarView, error)
}

type carQueriesImpl struct {
	cars     CarReadStore
	bookings BookingReadStore
}

func NewCarQueries(cars CarReadStore, bookings BookingReadStore) CarQueries {
	return &carQueriesImpl{
		cars:     cars,
		bookings: bookings,
	}
}

func (q *carQueriesImpl) List(ctx context.Context) ([]*CarView, error) {
	return q.cars.FindAll(ctx)
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarView, error) {
	return q.cars.FindByID(ctx, id)
}

// ListAvailable returns every car with at least one free unit over the range.
// A unit is taken for the whole range as soon as one confirmed booking
// overlaps any of its days.
func (q *carQueriesImpl) ListAvailable(ctx context.Context, from, to time.Time) ([]*AvailableCarView, error) {
	period, err := booking.NewDateRange(from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAvailabilityRange)
	}

	cars, err := q.cars.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := q.bookings.FindConfirmedOverlapping(ctx, period.Start(), period.End())
	if err != nil {
		return nil, err
	}

	taken := make(map[uuid.UUID]int32, len(occupied))
	for _, item := range occupied {
		taken[item.CarID]++
	}

	result := make([]*AvailableCarView, 0, len(cars))
	for _, view := range cars {
		available := view.Stock - taken[view.ID]
		if available <= 0 {
			continue
		}

		entity, err := car.NewCar(view.ID, view.Brand, view.Model, view.Stock,
			view.PricePeakCents, view.PriceMidCents, view.PriceOffCents)
		if err != nil {
			return nil, err
		}
		quote := entity.QuoteFor(period)

		item := &AvailableCarView{}
		if err := copier.Copy(item, view); err != nil {
			return nil, err
		}
		item.Available = available
		item.TotalPriceCents = quote.TotalCents
		item.AvgPerDayCents = quote.AvgPerDayCents

		result = append(result, item)
	}

	return result, nil
}
