//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"carental/internal/handler/dto/request"
	"carental/internal/handler/dto/response"
	"carental/tests/common/authtest"
	"carental/tests/common/dbtest"
	"carental/tests/common/httptest"
	"carental/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL          = "/api/bookings"
	confirmedBookingsURL = "/api/bookings/confirmed"
	availableCarsURL     = "/api/cars/available"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createCar(stock, peak, mid, off int32) uuid.UUID {
	return dbtest.CreateTestCar(s.T(), s.DB, "Toyota", "Corolla", stock, peak, mid, off)
}

func bookingRequest(carID uuid.UUID, start, end string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		CarID:     carID,
		StartDate: start,
		EndDate:   end,
	}
}

func (s *BookingSuite) postBooking(token string, req request.CreateBookingRequest) (*response.BookingResponse, int) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var res response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res, w.Code
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is confirmed and priced by season", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "driver@example.com", "customer")

		// Five peak days
		res, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "confirmed", res.Status)
		require.Equal(t, int32(50000), res.PriceCents)
		require.Equal(t, "2026-07-10", res.StartDate)
		require.Equal(t, "2026-07-14", res.EndDate)
	})

	s.Run("Normal case: price crosses a season boundary", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "seasonal@example.com", "customer")

		// Sep 14-15 peak, Sep 16-17 mid
		res, code := s.postBooking(token, bookingRequest(carID, "2026-09-14", "2026-09-17"))
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, int32(36000), res.PriceCents)
	})

	s.Run("Error case: exact duplicate of a confirmed booking is rejected", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "dup@example.com", "customer")

		_, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		_, code = s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: overlapping booking is rejected even for another car", func() {
		t := s.T()

		firstCar := s.createCar(3, 10000, 8000, 6000)
		secondCar := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "overlap@example.com", "customer")

		_, code := s.postBooking(token, bookingRequest(firstCar, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		// One customer cannot drive two cars on the same day
		_, code = s.postBooking(token, bookingRequest(secondCar, "2026-07-14", "2026-07-18"))
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Normal case: adjacent bookings do not conflict", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "adjacent@example.com", "customer")

		_, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		_, code = s.postBooking(token, bookingRequest(carID, "2026-07-15", "2026-07-18"))
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Error case: booking without a license on file", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLoginWithoutLicense(t, s.DB, s.Router, "nolicense@example.com")

		_, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusBadRequest, code)
	})

	s.Run("Error case: license expires before the last rental day", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		expiry := time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC)
		token := authtest.CreateAndLoginWithLicense(t, s.DB, s.Router, "expiring@example.com", expiry)

		_, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusBadRequest, code)
	})

	s.Run("Normal case: license valid exactly through the last day", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		expiry := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
		token := authtest.CreateAndLoginWithLicense(t, s.DB, s.Router, "exact@example.com", expiry)

		_, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Error case: unknown car", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "nocar@example.com", "customer")

		_, code := s.postBooking(token, bookingRequest(uuid.New(), "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusNotFound, code)
	})

	s.Run("Error case: unauthenticated", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, "2026-07-10", "2026-07-14"), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestCancelBooking
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: cancel frees the range for rebooking", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "rebooker@example.com", "customer")

		created, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var canceled response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &canceled))
		require.Equal(t, "canceled", canceled.Status)

		// Same range books again after cancellation
		_, code = s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Normal case: canceling twice is harmless", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "twice@example.com", "customer")

		created, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, cancelURL, nil, token)
			require.Equal(t, http.StatusOK, w.Code)

			var canceled response.BookingResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &canceled))
			require.Equal(t, "canceled", canceled.Status)
		}
	})

	s.Run("Error case: cannot cancel another customer's booking", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "customer")
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", "customer")

		created, code := s.postBooking(ownerToken, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, cancelURL, nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestGetAndListBookings
// =============================================================================

func (s *BookingSuite) TestGetAndListBookings() {
	s.Run("Normal case: owner reads own booking, stranger gets 404", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "reader@example.com", "customer")
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "customer")

		created, code := s.postBooking(ownerToken, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		detailURL := bookingsURL + "/" + created.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Normal case: list shows both confirmed and canceled bookings", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lister@example.com", "customer")

		first, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)
		_, code = s.postBooking(token, bookingRequest(carID, "2026-08-01", "2026-08-05"))
		require.Equal(t, http.StatusCreated, code)

		cancelURL := bookingsURL + "/" + first.ID.String() + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var items []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 2)
	})

	s.Run("Normal case: occupancy view is public and anonymized", func() {
		t := s.T()

		carID := s.createCar(3, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "occupied@example.com", "customer")

		_, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			confirmedBookingsURL+"?from=2026-07-01&to=2026-07-31", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var items []map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, carID.String(), items[0]["carId"])
		require.NotContains(t, items[0], "userId")
		require.NotContains(t, items[0], "licenseNumber")
	})
}

// =============================================================================
// TestCarAvailability
// =============================================================================

func (s *BookingSuite) TestCarAvailability() {
	s.Run("Normal case: availability drops with confirmed bookings", func() {
		t := s.T()

		carID := dbtest.CreateTestCar(t, s.DB, "Fiat", "500", 1, 10000, 8000, 6000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lastcar@example.com", "customer")

		_, code := s.postBooking(token, bookingRequest(carID, "2026-07-10", "2026-07-14"))
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			availableCarsURL+"?from=2026-07-12&to=2026-07-13", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var cars []response.AvailableCarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
		for _, car := range cars {
			require.NotEqual(t, carID, car.ID, "fully booked car must not be listed")
		}
	})
}
