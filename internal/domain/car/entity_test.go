//go:build unit

package car_test

import (
	"testing"
	"time"

	"carental/internal/domain/booking"
	"carental/internal/domain/car"
	"carental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCar(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Toyota", actual.Brand())
		assert.Equal(t, "Corolla", actual.Model())
		assert.Equal(t, int32(3), actual.Stock())
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		_, err := builder.NewCarBuilder().WithStock(-1).BuildDomain()
		require.ErrorIs(t, err, car.ErrInvalidStock)
	})

	t.Run("negative seasonal price is rejected", func(t *testing.T) {
		_, err := builder.NewCarBuilder().WithPrices(10000, -1, 6000).BuildDomain()
		require.ErrorIs(t, err, car.ErrInvalidPrice)
	})

	t.Run("zero stock is valid", func(t *testing.T) {
		actual, err := builder.NewCarBuilder().WithStock(0).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int32(0), actual.Stock())
	})
}

func TestPriceFor(t *testing.T) {
	c, err := builder.NewCarBuilder().WithPrices(10000, 8000, 6000).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, int32(10000), c.PriceFor(car.SeasonPeak))
	assert.Equal(t, int32(8000), c.PriceFor(car.SeasonMid))
	assert.Equal(t, int32(6000), c.PriceFor(car.SeasonOff))
}

func TestQuoteFor(t *testing.T) {
	c, err := builder.NewCarBuilder().WithPrices(10000, 8000, 6000).BuildDomain()
	require.NoError(t, err)

	mustRange := func(start, end time.Time) booking.DateRange {
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		return r
	}

	t.Run("single season range", func(t *testing.T) {
		// Jul 10-14: five peak days
		quote := c.QuoteFor(mustRange(
			time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		))

		assert.Equal(t, int64(50000), quote.TotalCents)
		assert.Equal(t, int64(10000), quote.AvgPerDayCents)
		assert.Equal(t, map[car.Season]int{car.SeasonPeak: 5}, quote.DaysPerSeason)
	})

	t.Run("range spanning the peak to mid boundary", func(t *testing.T) {
		// Sep 14-17: two peak days (14, 15) and two mid days (16, 17)
		quote := c.QuoteFor(mustRange(
			time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC),
		))

		assert.Equal(t, int64(2*10000+2*8000), quote.TotalCents)
		assert.Equal(t, int64(9000), quote.AvgPerDayCents)
		assert.Equal(t, map[car.Season]int{car.SeasonPeak: 2, car.SeasonMid: 2}, quote.DaysPerSeason)
	})

	t.Run("range spanning all three seasons", func(t *testing.T) {
		// Oct 30 - Nov 2: two mid days, two off days
		quote := c.QuoteFor(mustRange(
			time.Date(2026, 10, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		))

		assert.Equal(t, int64(2*8000+2*6000), quote.TotalCents)
		assert.Equal(t, map[car.Season]int{car.SeasonMid: 2, car.SeasonOff: 2}, quote.DaysPerSeason)
	})

	t.Run("average rounds down", func(t *testing.T) {
		// Sep 15-16: one peak day and one mid day, odd total
		odd, err := builder.NewCarBuilder().WithPrices(10001, 8000, 6000).BuildDomain()
		require.NoError(t, err)

		quote := odd.QuoteFor(mustRange(
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		))

		assert.Equal(t, int64(18001), quote.TotalCents)
		assert.Equal(t, int64(9000), quote.AvgPerDayCents)
	})
}
