package readstore

import (
	"context"
	"time"

	"carental/internal/infra"
	sqlc "carental/internal/infra/sqlc/generated"
	"carental/internal/pkg/pgconv"
	"carental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	GetBookingsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetBookingsByUserIDRow, error)
	GetConfirmedBookingsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.GetConfirmedBookingsOverlappingParams) ([]sqlc.GetConfirmedBookingsOverlappingRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row), nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(row)
	}

	return result, nil
}

func (r *BookingReadStore) FindConfirmedOverlapping(ctx context.Context, from, to time.Time) ([]*queries.ConfirmedBookingItem, error) {
	params := sqlc.GetConfirmedBookingsOverlappingParams{
		ToDate:   pgconv.DateToPgtype(to),
		FromDate: pgconv.DateToPgtype(from),
	}

	rows, err := r.queries.GetConfirmedBookingsOverlapping(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find confirmed bookings in range", err)
	}

	result := make([]*queries.ConfirmedBookingItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ConfirmedBookingItem{
			CarID:     row.CarID,
			StartDate: pgconv.DateFromPgtype(row.StartDate),
			EndDate:   pgconv.DateFromPgtype(row.EndDate),
		}
	}

	return result, nil
}

func rowToBookingView(row sqlc.GetBookingByIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID:                row.ID,
		UserID:            row.UserID,
		CarID:             row.CarID,
		CarBrand:          row.CarBrand,
		CarModel:          row.CarModel,
		StartDate:         pgconv.DateFromPgtype(row.StartDate),
		EndDate:           pgconv.DateFromPgtype(row.EndDate),
		Status:            row.Status,
		PriceCents:        row.PriceCents,
		LicenseNumber:     row.LicenseNumber,
		LicenseValidUntil: pgconv.DateFromPgtype(row.LicenseValidUntil),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toBookingListItem(row sqlc.GetBookingsByUserIDRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         row.ID,
		CarID:      row.CarID,
		CarBrand:   row.CarBrand,
		CarModel:   row.CarModel,
		StartDate:  pgconv.DateFromPgtype(row.StartDate),
		EndDate:    pgconv.DateFromPgtype(row.EndDate),
		Status:     row.Status,
		PriceCents: row.PriceCents,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
