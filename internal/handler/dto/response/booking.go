package response

import (
	"time"

	"carental/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	CarID             uuid.UUID `json:"carId"`
	CarBrand          string    `json:"carBrand"`
	CarModel          string    `json:"carModel"`
	StartDate         string    `json:"startDate"`
	EndDate           string    `json:"endDate"`
	Status            string    `json:"status"`
	PriceCents        int32     `json:"priceCents"`
	LicenseNumber     string    `json:"licenseNumber"`
	LicenseValidUntil string    `json:"licenseValidUntil"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	CarID      uuid.UUID `json:"carId"`
	CarBrand   string    `json:"carBrand"`
	CarModel   string    `json:"carModel"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Status     string    `json:"status"`
	PriceCents int32     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ConfirmedBookingResponse struct {
	CarID     uuid.UUID `json:"carId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                view.ID,
		UserID:            view.UserID,
		CarID:             view.CarID,
		CarBrand:          view.CarBrand,
		CarModel:          view.CarModel,
		StartDate:         view.StartDate.Format(dateLayout),
		EndDate:           view.EndDate.Format(dateLayout),
		Status:            view.Status,
		PriceCents:        view.PriceCents,
		LicenseNumber:     view.LicenseNumber,
		LicenseValidUntil: view.LicenseValidUntil.Format(dateLayout),
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:         item.ID,
		CarID:      item.CarID,
		CarBrand:   item.CarBrand,
		CarModel:   item.CarModel,
		StartDate:  item.StartDate.Format(dateLayout),
		EndDate:    item.EndDate.Format(dateLayout),
		Status:     item.Status,
		PriceCents: item.PriceCents,
		CreatedAt:  item.CreatedAt,
	}
}

func FromConfirmedBookingItem(item *queries.ConfirmedBookingItem) *ConfirmedBookingResponse {
	return &ConfirmedBookingResponse{
		CarID:     item.CarID,
		StartDate: item.StartDate.Format(dateLayout),
		EndDate:   item.EndDate.Format(dateLayout),
	}
}
