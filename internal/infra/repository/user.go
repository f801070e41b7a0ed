package repository

import (
	"context"

	"carental/internal/domain/user"
	"carental/internal/infra"
	sqlc "carental/internal/infra/sqlc/generated"
	"carental/internal/pkg/pgconv"
	"carental/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserByIDRow, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	params := sqlc.CreateUserParams{
		ID:                u.ID(),
		Email:             u.Email().Value(),
		PasswordHash:      u.PasswordHash(),
		Role:              u.Role().String(),
		LicenseValidUntil: pgconv.DatePtrToPgtype(u.LicenseValidUntil()),
	}

	if number := u.LicenseNumber(); number != "" {
		params.LicenseNumber = pgconv.StringToPgtype(number)
	}

	resultID, err := r.queries.CreateUser(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return resultID, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &commands.UserSnapshot{
		ID:                row.ID,
		Email:             row.Email,
		Role:              row.Role,
		LicenseNumber:     pgconv.StringPtrFromPgtype(row.LicenseNumber),
		LicenseValidUntil: pgconv.DatePtrFromPgtype(row.LicenseValidUntil),
		IsActive:          row.IsActive,
	}, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.UpdateLastLogin(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
