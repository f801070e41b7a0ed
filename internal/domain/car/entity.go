package car

import (
	"errors"
	"time"

	"carental/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidStock = errors.New("stock must not be negative")
	ErrInvalidPrice = errors.New("seasonal prices must not be negative")
)

type Car struct {
	id             uuid.UUID
	brand          string
	model          string
	stock          int32
	pricePeakCents int32
	priceMidCents  int32
	priceOffCents  int32
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCar(id uuid.UUID, brand, model string, stock, pricePeakCents, priceMidCents, priceOffCents int32) (*Car, error) {
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if pricePeakCents < 0 || priceMidCents < 0 || priceOffCents < 0 {
		return nil, ErrInvalidPrice
	}

	return &Car{
		id:             id,
		brand:          brand,
		model:          model,
		stock:          stock,
		pricePeakCents: pricePeakCents,
		priceMidCents:  priceMidCents,
		priceOffCents:  priceOffCents,
	}, nil
}

func (c *Car) ID() uuid.UUID { return c.id }
func (c *Car) Brand() string { return c.brand }
func (c *Car) Model() string { return c.model }
func (c *Car) Stock() int32  { return c.stock }

func (c *Car) PriceFor(s Season) int32 {
	switch s {
	case SeasonPeak:
		return c.pricePeakCents
	case SeasonMid:
		return c.priceMidCents
	default:
		return c.priceOffCents
	}
}

// Quote is the seasonal price breakdown for one car over a date range.
type Quote struct {
	TotalCents     int64
	AvgPerDayCents int64
	DaysPerSeason  map[Season]int
}

// QuoteFor sums the per-day seasonal price over every day of the range,
// endpoints inclusive.
func (c *Car) QuoteFor(period booking.DateRange) Quote {
	total := int64(0)
	days := map[Season]int{}

	period.EachDay(func(day time.Time) {
		s := SeasonOf(day)
		total += int64(c.PriceFor(s))
		days[s]++
	})

	return Quote{
		TotalCents:     total,
		AvgPerDayCents: total / int64(period.Days()),
		DaysPerSeason:  days,
	}
}
