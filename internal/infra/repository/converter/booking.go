package converter

import (
	"carental/internal/domain/booking"
	sqlc "carental/internal/infra/sqlc/generated"
	"carental/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:                b.ID(),
		UserID:            b.UserID(),
		CarID:             b.CarID(),
		StartDate:         pgconv.DateToPgtype(b.Period().Start()),
		EndDate:           pgconv.DateToPgtype(b.Period().End()),
		Status:            b.Status().String(),
		PriceCents:        b.Price().Cents(),
		LicenseNumber:     b.License().Number(),
		LicenseValidUntil: pgconv.DateToPgtype(b.License().ValidUntil()),
	}
}

func BookingFromModel(row sqlc.Booking) (*booking.Booking, error) {
	period, err := booking.NewDateRange(
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
	)
	if err != nil {
		return nil, err
	}

	license, err := booking.NewLicense(row.LicenseNumber, pgconv.DateFromPgtype(row.LicenseValidUntil))
	if err != nil {
		return nil, err
	}

	price, err := booking.NewMoney(row.PriceCents)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		row.CarID,
		period,
		booking.Status(row.Status),
		price,
		license,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
