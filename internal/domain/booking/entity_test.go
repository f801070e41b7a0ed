//go:build unit

package booking_test

import (
	"testing"
	"time"

	"carental/internal/domain/booking"
	"carental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsCanceled())
	})

	t.Run("license must cover the whole range", func(t *testing.T) {
		cases := []struct {
			name       string
			validUntil time.Time
			errIs      error
		}{
			{
				name:       "valid through the last day",
				validUntil: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
			},
			{
				name:       "expires one day short",
				validUntil: time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
				errIs:      booking.ErrLicenseExpiresTooEarly,
			},
			{
				name:       "valid only at the start date",
				validUntil: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
				errIs:      booking.ErrLicenseExpiresTooEarly,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().
					WithDates(
						time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
						time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
					).
					WithLicense("DL-123456", c.validUntil)

				actual, err := b.BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b1, err1 := builder.NewBookingBuilder().BuildDomain()
		b2, err2 := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestReconstructBooking(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	carID := uuid.New()
	period, err := booking.NewDateRange(
		time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	license, err := booking.NewLicense("DL-123456", time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	price, err := booking.NewMoney(40000)
	require.NoError(t, err)
	now := time.Now()

	// Reconstruction must not re-run creation invariants; this license no
	// longer covers the range, but the stored row is still loadable.
	actual := booking.ReconstructBooking(id, userID, carID, period, booking.StatusCanceled, price, license, now, now)

	assert.Equal(t, id, actual.ID())
	assert.Equal(t, userID, actual.UserID())
	assert.Equal(t, carID, actual.CarID())
	assert.Equal(t, booking.StatusCanceled, actual.Status())
	assert.True(t, actual.IsCanceled())
	assert.False(t, actual.IsActive())
	assert.Equal(t, now, actual.CreatedAt())
}
