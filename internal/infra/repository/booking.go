package repository

import (
	"context"

	"carental/internal/domain/booking"
	"carental/internal/infra"
	"carental/internal/infra/repository/converter"
	sqlc "carental/internal/infra/sqlc/generated"
	"carental/internal/pkg/pgconv"
	"carental/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	AcquireUserBookingLock(ctx context.Context, db sqlc.DBTX, userID string) error
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	SetBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.SetBookingStatusParams) (sqlc.Booking, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	GetConfirmedBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetConfirmedBookingsByUserRow, error)
	GetBookingsByUserAndRange(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserAndRangeParams) ([]sqlc.GetBookingsByUserAndRangeRow, error)
	PruneCanceledDuplicates(ctx context.Context, db sqlc.DBTX, arg sqlc.PruneCanceledDuplicatesParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// AcquireUserLock serializes all booking writes for one user inside the
// surrounding transaction. The lock is released on commit or rollback.
func (r *BookingRepository) AcquireUserLock(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.AcquireUserBookingLock(ctx, tx, userID.String()); err != nil {
		return infra.WrapRepoErr("failed to acquire user booking lock", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params := converter.BookingToCreateParams(b)

	resultID, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return resultID, nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID, status booking.Status) (*booking.Booking, error) {
	params := sqlc.SetBookingStatusParams{
		ID:     id,
		UserID: userID,
		Status: status.String(),
	}

	row, err := r.queries.SetBookingStatus(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to set booking status", err)
	}

	return converter.BookingFromModel(row)
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.DeleteBooking(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	return nil
}

func (r *BookingRepository) FindConfirmedByUser(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) ([]commands.BookingRecord, error) {
	rows, err := r.queries.GetConfirmedBookingsByUser(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find confirmed bookings", err)
	}

	records := make([]commands.BookingRecord, 0, len(rows))
	for _, row := range rows {
		period, err := booking.NewDateRange(
			pgconv.DateFromPgtype(row.StartDate),
			pgconv.DateFromPgtype(row.EndDate),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid range", err)
		}
		records = append(records, commands.BookingRecord{
			ID:        row.ID,
			CarID:     row.CarID,
			Period:    period,
			Status:    booking.Status(row.Status),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}

	return records, nil
}

// FindByUserAndRange returns every booking of the user whose range matches the
// given one exactly, newest first, regardless of status.
func (r *BookingRepository) FindByUserAndRange(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, period booking.DateRange) ([]commands.BookingRecord, error) {
	params := sqlc.GetBookingsByUserAndRangeParams{
		UserID:    userID,
		StartDate: pgconv.DateToPgtype(period.Start()),
		EndDate:   pgconv.DateToPgtype(period.End()),
	}

	rows, err := r.queries.GetBookingsByUserAndRange(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by range", err)
	}

	records := make([]commands.BookingRecord, 0, len(rows))
	for _, row := range rows {
		rowPeriod, err := booking.NewDateRange(
			pgconv.DateFromPgtype(row.StartDate),
			pgconv.DateFromPgtype(row.EndDate),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid range", err)
		}
		records = append(records, commands.BookingRecord{
			ID:        row.ID,
			CarID:     row.CarID,
			Period:    rowPeriod,
			Status:    booking.Status(row.Status),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}

	return records, nil
}

// PruneCanceledDuplicates deletes all but the most recent canceled booking of
// the user for the exact range. Runs outside the booking transaction.
func (r *BookingRepository) PruneCanceledDuplicates(ctx context.Context, userID uuid.UUID, period booking.DateRange) (int64, error) {
	params := sqlc.PruneCanceledDuplicatesParams{
		UserID:    userID,
		StartDate: pgconv.DateToPgtype(period.Start()),
		EndDate:   pgconv.DateToPgtype(period.End()),
	}

	pruned, err := r.queries.PruneCanceledDuplicates(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to prune canceled duplicates", err)
	}

	return pruned, nil
}
