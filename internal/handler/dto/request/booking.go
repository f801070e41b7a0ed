package request

import (
	"time"

	"carental/internal/domain/booking"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	CarID     uuid.UUID `json:"car_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string    `json:"end_date" binding:"required,datetime=2006-01-02"`
}

func (r CreateBookingRequest) ToDomain() (booking.DateRange, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return booking.DateRange{}, err
	}

	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return booking.DateRange{}, err
	}

	return booking.NewDateRange(start, end)
}
