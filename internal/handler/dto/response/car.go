package response

import (
	"carental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID             uuid.UUID `json:"id"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Stock          int32     `json:"stock"`
	PricePeakCents int32     `json:"pricePeakCents"`
	PriceMidCents  int32     `json:"priceMidCents"`
	PriceOffCents  int32     `json:"priceOffCents"`
}

type AvailableCarResponse struct {
	ID              uuid.UUID `json:"id"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	Available       int32     `json:"available"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	AvgPerDayCents  int64     `json:"avgPerDayCents"`
}

func FromCarView(view *queries.CarView) *CarResponse {
	return &CarResponse{
		ID:             view.ID,
		Brand:          view.Brand,
		Model:          view.Model,
		Stock:          view.Stock,
		PricePeakCents: view.PricePeakCents,
		PriceMidCents:  view.PriceMidCents,
		PriceOffCents:  view.PriceOffCents,
	}
}

func FromAvailableCarView(view *queries.AvailableCarView) *AvailableCarResponse {
	return &AvailableCarResponse{
		ID:              view.ID,
		Brand:           view.Brand,
		Model:           view.Model,
		Available:       view.Available,
		TotalPriceCents: view.TotalPriceCents,
		AvgPerDayCents:  view.AvgPerDayCents,
	}
}
