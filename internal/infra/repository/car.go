package repository

import (
	"context"

	"carental/internal/infra"
	sqlc "carental/internal/infra/sqlc/generated"
	"carental/internal/pkg/pgconv"
	"carental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CarWriteQueries interface {
	GetCarByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Car, error)
}

type CarRepository struct {
	queries CarWriteQueries
	db      sqlc.DBTX
}

func NewCarRepository(queries CarWriteQueries, db sqlc.DBTX) *CarRepository {
	return &CarRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CarSnapshot, error) {
	row, err := r.queries.GetCarByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return &commands.CarSnapshot{
		ID:             row.ID,
		Brand:          row.Brand,
		Model:          row.Model,
		Stock:          row.Stock,
		PricePeakCents: row.PricePeakCents,
		PriceMidCents:  row.PriceMidCents,
		PriceOffCents:  row.PriceOffCents,
	}, nil
}
