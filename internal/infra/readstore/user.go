package readstore

import (
	"context"

	"carental/internal/infra"
	sqlc "carental/internal/infra/sqlc/generated"
	"carental/internal/pkg/pgconv"
	"carental/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserViewQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserByIDRow, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.GetUserByEmailRow, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserViewQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:                row.ID,
		Email:             row.Email,
		Role:              row.Role,
		LicenseNumber:     pgconv.StringPtrFromPgtype(row.LicenseNumber),
		LicenseValidUntil: pgconv.DatePtrFromPgtype(row.LicenseValidUntil),
		IsActive:          row.IsActive,
	}, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view := &queries.AuthorizedUserView{
		ID:                row.ID,
		Email:             row.Email,
		Role:              row.Role,
		LicenseNumber:     pgconv.StringPtrFromPgtype(row.LicenseNumber),
		LicenseValidUntil: pgconv.DatePtrFromPgtype(row.LicenseValidUntil),
		IsActive:          row.IsActive,
	}

	return view, row.PasswordHash, nil
}
