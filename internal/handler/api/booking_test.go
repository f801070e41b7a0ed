//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"carental/internal/domain/user"
	"carental/internal/handler/api"
	"carental/internal/pkg/errs"
	"carental/internal/usecase/commands"
	"carental/internal/usecase/queries"
	"carental/tests/common/builder"
	"carental/tests/common/httptest"
	"carental/tests/common/testutil"
	commandsmock "carental/tests/mock/commands"
	queriesmock "carental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		// Mock authenticated user
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMine)
	s.router.GET("/bookings/confirmed", s.handler.ListConfirmed)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal("confirmed", body["status"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []testCaseBooking{
			{name: "missing field: car_id (required)", mutate: testutil.Field("car_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_date (required)", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_date (required)", mutate: testutil.Field("end_date", nil), expectCode: http.StatusBadRequest},
			{name: "malformed date: not ISO format", mutate: testutil.Field("start_date", "10/07/2026"), expectCode: http.StatusBadRequest},
			{name: "malformed date: missing zero padding", mutate: testutil.Field("end_date", "2026-7-4"), expectCode: http.StatusBadRequest},
			{name: "malformed car_id", mutate: testutil.Field("car_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reversed date range",
				commandsError:  errs.Mark(errs.New("start date is after end date"), commands.ErrInvalidBookingRange),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Start date must not be after end date",
			},
			{
				name:           "license missing",
				commandsError:  commands.ErrLicenseMissing,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "driving license",
			},
			{
				name:           "license expires too early",
				commandsError:  errs.Mark(errs.New("license expires before the last rental day"), commands.ErrLicenseExpired),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "valid through the last rental day",
			},
			{
				name:           "duplicate booking",
				commandsError:  commands.ErrDuplicateBooking,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "exact dates already exists",
			},
			{
				name:           "overlapping booking",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "overlap an existing confirmed booking",
			},
			{
				name:           "car not found",
				commandsError:  commands.ErrCarNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
			},
			{
				name:           "user not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "domain validation failed",
				commandsError:  errs.Mark(errs.New("quoted price exceeds storable amount"), commands.ErrDomainValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errs.Mark(errors.New("connection reset"), commands.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 200 OK with the canceled booking", func() {
		canceledView := builder.NewBookingBuilder().WithID(bookingID).AsCanceled().BuildView()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(canceledView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("canceled", body["status"])
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for unknown or foreign booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with own booking", func() {
		view := builder.NewBookingBuilder().WithID(bookingID).WithUserID(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID.String(), body["id"])
	})

	s.Run("error: 404 Not Found hides other customers' bookings", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(nil, queries.ErrBookingAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 Not Found for a missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(nil, errs.Mark(errs.New("booking not found"), queries.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 Internal Server Error on a read store failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/bookings"

	s.Run("success: returns 200 OK with the user's bookings", func() {
		first := builder.NewBookingBuilder().WithUserID(s.userID)
		second := builder.NewBookingBuilder().WithUserID(s.userID).AsCanceled()

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.BookingListItem{first.BuildListItem(), second.BuildListItem()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestListConfirmed
// ================================================================================

func (s *BookingHandlerTestSuite) TestListConfirmed() {
	s.Run("success: returns 200 OK with occupancy items", func() {
		item := builder.NewBookingBuilder().BuildConfirmedItem()
		s.mockQueries.EXPECT().ListConfirmedInRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.ConfirmedBookingItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/confirmed?from=2026-07-01&to=2026-07-31", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.NotContains(body[0], "licenseNumber")
	})

	s.Run("error: 400 Bad Request on missing or malformed range", func() {
		cases := []string{
			"/bookings/confirmed",
			"/bookings/confirmed?from=2026-07-01",
			"/bookings/confirmed?from=bad&to=2026-07-31",
			"/bookings/confirmed?from=2026-07-31&to=2026-07-01",
		}
		for _, path := range cases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
		}
	})
}
