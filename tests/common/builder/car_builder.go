//go:build unit || e2e

package builder

import (
	"time"

	"carental/internal/domain/car"
	"carental/internal/usecase/commands"
	"carental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID             uuid.UUID
	Brand          string
	Model          string
	Stock          int32
	PricePeakCents int32
	PriceMidCents  int32
	PriceOffCents  int32
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:             uuid.New(),
		Brand:          "Toyota",
		Model:          "Corolla",
		Stock:          3,
		PricePeakCents: 10000,
		PriceMidCents:  8000,
		PriceOffCents:  6000,
	}
}

func (c *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CarBuilder) BuildDomain() (*car.Car, error) {
	return car.NewCar(c.ID, c.Brand, c.Model, c.Stock,
		c.PricePeakCents, c.PriceMidCents, c.PriceOffCents)
}

func (c *CarBuilder) BuildSnapshot() *commands.CarSnapshot {
	return &commands.CarSnapshot{
		ID:             c.ID,
		Brand:          c.Brand,
		Model:          c.Model,
		Stock:          c.Stock,
		PricePeakCents: c.PricePeakCents,
		PriceMidCents:  c.PriceMidCents,
		PriceOffCents:  c.PriceOffCents,
	}
}

func (c *CarBuilder) BuildView() *queries.CarView {
	now := time.Now()
	return &queries.CarView{
		ID:             c.ID,
		Brand:          c.Brand,
		Model:          c.Model,
		Stock:          c.Stock,
		PricePeakCents: c.PricePeakCents,
		PriceMidCents:  c.PriceMidCents,
		PriceOffCents:  c.PriceOffCents,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Fluent builder methods
func (c *CarBuilder) WithID(id uuid.UUID) *CarBuilder {
	c.ID = id
	return c
}

func (c *CarBuilder) WithStock(stock int32) *CarBuilder {
	c.Stock = stock
	return c
}

func (c *CarBuilder) WithPrices(peak, mid, off int32) *CarBuilder {
	c.PricePeakCents = peak
	c.PriceMidCents = mid
	c.PriceOffCents = off
	return c
}
