package commands

import (
	"context"
	"log/slog"
	"math"

	"carental/internal/domain/booking"
	"carental/internal/domain/car"
	"carental/internal/domain/user"
	reqdto "carental/internal/handler/dto/request"
	"carental/internal/infra"
	sqlc "carental/internal/infra/sqlc/generated"
	"carental/internal/pkg/errs"
	"carental/internal/usecase/queries"
	"carental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookingRange     = errs.New("invalid booking date range")
	ErrLicenseMissing          = errs.New("customer has no driving license on file")
	ErrLicenseExpired          = errs.New("license expires before the last rental day")
	ErrDuplicateBooking        = errs.New("duplicate booking for the same dates")
	ErrBookingConflict         = errs.New("booking overlaps an existing confirmed booking")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrCarNotFound             = errs.New("car not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingRepository interface {
	AcquireUserLock(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	SetStatus(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID, status booking.Status) (*booking.Booking, error)
	FindConfirmedByUser(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) ([]BookingRecord, error)
	FindByUserAndRange(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, period booking.DateRange) ([]BookingRecord, error)
	PruneCanceledDuplicates(ctx context.Context, userID uuid.UUID, period booking.DateRange) (int64, error)
}

type CarRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	carRepo        CarRepository
	userRepo       UserRepository
	bookingQueries queries.BookingQueries
	tx             shared.TxRunner
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	userRepo UserRepository,
	bookingQueries queries.BookingQueries,
	tx shared.TxRunner,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		carRepo:        carRepo,
		userRepo:       userRepo,
		bookingQueries: bookingQueries,
		tx:             tx,
	}
}

// CreateBooking runs the whole admission pipeline: range validation, license
// coverage, exact-range duplicate detection, overlap detection against the
// customer's confirmed bookings, and the insert. Everything that reads or
// writes booking rows happens inside one transaction under a per-customer
// advisory lock, so two concurrent proposals for the same customer cannot
// both pass the checks.
func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	period, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRange)
	}

	license, err := u.loadLicense(ctx, userID)
	if err != nil {
		return nil, err
	}

	price, err := u.quotePrice(ctx, req.CarID, period)
	if err != nil {
		return nil, err
	}

	bookingEntity, err := booking.NewBooking(userID, req.CarID, period, license, price)
	if err != nil {
		if errs.Is(err, booking.ErrLicenseExpiresTooEarly) {
			return nil, errs.Mark(err, ErrLicenseExpired)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	staleCanceled := 0
	err = u.tx.RunInTx(ctx, func(tx sqlc.DBTX) error {
		if lockErr := u.bookingRepo.AcquireUserLock(ctx, tx, userID); lockErr != nil {
			return errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		sameRange, findErr := u.bookingRepo.FindByUserAndRange(ctx, tx, userID, period)
		if findErr != nil {
			return errs.Mark(findErr, ErrDatabaseOperationFailed)
		}
		for _, record := range sameRange {
			if record.Status == booking.StatusConfirmed {
				return ErrDuplicateBooking
			}
			staleCanceled++
		}

		confirmed, findErr := u.bookingRepo.FindConfirmedByUser(ctx, tx, userID)
		if findErr != nil {
			return errs.Mark(findErr, ErrDatabaseOperationFailed)
		}
		for _, record := range confirmed {
			if record.Period.Overlaps(period) {
				return ErrBookingConflict
			}
		}

		if _, createErr := u.bookingRepo.Create(ctx, tx, bookingEntity); createErr != nil {
			if infra.IsKind(createErr, infra.KindConflict) {
				return ErrBookingConflict
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stale canceled rows for this exact range are collapsed to the most
	// recent one. Best effort outside the booking transaction: a failure
	// here must not undo a committed booking.
	if staleCanceled > 1 {
		if _, pruneErr := u.bookingRepo.PruneCanceledDuplicates(ctx, userID, period); pruneErr != nil {
			slog.Warn("failed to prune canceled duplicate bookings",
				"user_id", userID, "error", pruneErr.Error())
		}
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, bookingEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

// CancelBooking flips the booking to canceled. Canceling an already canceled
// booking succeeds and returns the current row unchanged in status, so
// retried cancellations are harmless. Only the owner can cancel.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*queries.BookingView, error) {
	err := u.tx.RunInTx(ctx, func(tx sqlc.DBTX) error {
		if _, setErr := u.bookingRepo.SetStatus(ctx, tx, bookingID, userID, booking.StatusCanceled); setErr != nil {
			if infra.IsKind(setErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(setErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (u *bookingUseCaseImpl) loadLicense(ctx context.Context, userID uuid.UUID) (booking.License, error) {
	userSnapshot, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.License{}, ErrUserNotFound
		}
		return booking.License{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if userSnapshot.LicenseNumber == nil || userSnapshot.LicenseValidUntil == nil {
		return booking.License{}, ErrLicenseMissing
	}

	license, err := booking.NewLicense(*userSnapshot.LicenseNumber, *userSnapshot.LicenseValidUntil)
	if err != nil {
		return booking.License{}, errs.Mark(err, ErrLicenseMissing)
	}

	return license, nil
}

func (u *bookingUseCaseImpl) quotePrice(ctx context.Context, carID uuid.UUID, period booking.DateRange) (booking.Money, error) {
	carSnapshot, err := u.carRepo.FindByID(ctx, carID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Money{}, ErrCarNotFound
		}
		return booking.Money{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	carEntity, err := car.NewCar(carSnapshot.ID, carSnapshot.Brand, carSnapshot.Model,
		carSnapshot.Stock, carSnapshot.PricePeakCents, carSnapshot.PriceMidCents, carSnapshot.PriceOffCents)
	if err != nil {
		return booking.Money{}, errs.Mark(err, ErrDomainValidation)
	}

	quote := carEntity.QuoteFor(period)
	if quote.TotalCents > math.MaxInt32 {
		return booking.Money{}, errs.Mark(errs.New("quoted price exceeds storable amount"), ErrDomainValidation)
	}

	price, err := booking.NewMoney(int32(quote.TotalCents))
	if err != nil {
		return booking.Money{}, errs.Mark(err, ErrDomainValidation)
	}

	return price, nil
}
