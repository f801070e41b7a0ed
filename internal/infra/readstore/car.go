package readstore

import (
	"context"

	"carental/internal/infra"
	sqlc "carental/internal/infra/sqlc/generated"
	"carental/internal/pkg/pgconv"
	"carental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarViewQueries interface {
	ListCars(ctx context.Context, db sqlc.DBTX) ([]sqlc.Car, error)
	GetCarByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Car, error)
}

type CarReadStore struct {
	queries CarViewQueries
	db      sqlc.DBTX
}

func NewCarReadStore(queries CarViewQueries, db sqlc.DBTX) *CarReadStore {
	return &CarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CarReadStore) FindAll(ctx context.Context) ([]*queries.CarView, error) {
	rows, err := r.queries.ListCars(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}

	result := make([]*queries.CarView, len(rows))
	for i, row := range rows {
		result[i] = carModelToView(row)
	}

	return result, nil
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row, err := r.queries.GetCarByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return carModelToView(row), nil
}

func carModelToView(row sqlc.Car) *queries.CarView {
	return &queries.CarView{
		ID:             row.ID,
		Brand:          row.Brand,
		Model:          row.Model,
		Stock:          row.Stock,
		PricePeakCents: row.PricePeakCents,
		PriceMidCents:  row.PriceMidCents,
		PriceOffCents:  row.PriceOffCents,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
