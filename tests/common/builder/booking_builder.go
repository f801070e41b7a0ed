//go:build unit || e2e

package builder

import (
	"time"

	dombooking "carental/internal/domain/booking"
	reqdto "carental/internal/handler/dto/request"
	"carental/internal/usecase/commands"
	"carental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	CarID             uuid.UUID
	CarBrand          string
	CarModel          string
	StartDate         time.Time
	EndDate           time.Time
	Status            string
	PriceCents        int32
	LicenseNumber     string
	LicenseValidUntil time.Time
	CreatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		CarID:             uuid.New(),
		CarBrand:          "Toyota",
		CarModel:          "Corolla",
		StartDate:         time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		Status:            "confirmed",
		PriceCents:        40000,
		LicenseNumber:     "DL-123456",
		LicenseValidUntil: time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt:         now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}

	license, err := dombooking.NewLicense(b.LicenseNumber, b.LicenseValidUntil)
	if err != nil {
		return nil, err
	}

	price, err := dombooking.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}

	return dombooking.NewBooking(b.UserID, b.CarID, period, license, price)
}

func (b *BookingBuilder) BuildRange() dombooking.DateRange {
	period, err := dombooking.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return period
}

func (b *BookingBuilder) BuildRecord() commands.BookingRecord {
	return commands.BookingRecord{
		ID:        b.ID,
		CarID:     b.CarID,
		Period:    b.BuildRange(),
		Status:    dombooking.Status(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CarID:     b.CarID,
		StartDate: b.StartDate.Format("2006-01-02"),
		EndDate:   b.EndDate.Format("2006-01-02"),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                b.ID,
		UserID:            b.UserID,
		CarID:             b.CarID,
		CarBrand:          b.CarBrand,
		CarModel:          b.CarModel,
		StartDate:         b.StartDate,
		EndDate:           b.EndDate,
		Status:            b.Status,
		PriceCents:        b.PriceCents,
		LicenseNumber:     b.LicenseNumber,
		LicenseValidUntil: b.LicenseValidUntil,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         b.ID,
		CarID:      b.CarID,
		CarBrand:   b.CarBrand,
		CarModel:   b.CarModel,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     b.Status,
		PriceCents: b.PriceCents,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildConfirmedItem() *queries.ConfirmedBookingItem {
	return &queries.ConfirmedBookingItem{
		CarID:     b.CarID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithCarID(carID uuid.UUID) *BookingBuilder {
	b.CarID = carID
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithLicense(number string, validUntil time.Time) *BookingBuilder {
	b.LicenseNumber = number
	b.LicenseValidUntil = validUntil
	return b
}

func (b *BookingBuilder) WithPriceCents(cents int32) *BookingBuilder {
	b.PriceCents = cents
	return b
}

func (b *BookingBuilder) AsCanceled() *BookingBuilder {
	b.Status = "canceled"
	return b
}
