//go:build unit || e2e

package builder

import (
	"time"

	"carental/internal/domain/user"
	reqdto "carental/internal/handler/dto/request"
	"carental/internal/usecase/commands"
	"carental/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID                uuid.UUID
	Email             string
	Password          string
	PasswordHash      string
	Role              string
	LicenseNumber     string
	LicenseValidUntil *time.Time
	IsActive          bool
}

func NewUserBuilder() *UserBuilder {
	validUntil := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
	return &UserBuilder{
		ID:                uuid.New(),
		Email:             "customer@example.com",
		Password:          "password123",
		PasswordHash:      "hashed_password",
		Role:              "customer",
		LicenseNumber:     "DL-123456",
		LicenseValidUntil: &validUntil,
		IsActive:          true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.LicenseNumber, u.LicenseValidUntil), nil
}

func (u *UserBuilder) BuildSnapshot() *commands.UserSnapshot {
	var licenseNumber *string
	if u.LicenseNumber != "" {
		n := u.LicenseNumber
		licenseNumber = &n
	}

	return &commands.UserSnapshot{
		ID:                u.ID,
		Email:             u.Email,
		Role:              u.Role,
		LicenseNumber:     licenseNumber,
		LicenseValidUntil: u.LicenseValidUntil,
		IsActive:          u.IsActive,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	var licenseNumber *string
	if u.LicenseNumber != "" {
		n := u.LicenseNumber
		licenseNumber = &n
	}

	return &queries.AuthorizedUserView{
		ID:                u.ID,
		Email:             u.Email,
		Role:              u.Role,
		LicenseNumber:     licenseNumber,
		LicenseValidUntil: u.LicenseValidUntil,
		IsActive:          u.IsActive,
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	var validUntil string
	if u.LicenseValidUntil != nil {
		validUntil = u.LicenseValidUntil.Format("2006-01-02")
	}

	return reqdto.RegisterRequest{
		Email:             u.Email,
		Password:          u.Password,
		LicenseNumber:     u.LicenseNumber,
		LicenseValidUntil: validUntil,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithLicense(number string, validUntil time.Time) *UserBuilder {
	u.LicenseNumber = number
	u.LicenseValidUntil = &validUntil
	return u
}

func (u *UserBuilder) WithoutLicense() *UserBuilder {
	u.LicenseNumber = ""
	u.LicenseValidUntil = nil
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
