package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Drives auth and carries the customer's stored license, which
// seeds the per-booking snapshot but is not referenced by it afterwards.
type User struct {
	id                uuid.UUID
	email             Email
	passwordHash      string
	role              Role
	licenseNumber     string
	licenseValidUntil *time.Time
	lastLogin         *time.Time
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewUser(email Email, passwordHash string, role Role, licenseNumber string, licenseValidUntil *time.Time) *User {
	return &User{
		id:                uuid.New(),
		email:             email,
		passwordHash:      passwordHash,
		role:              role,
		licenseNumber:     licenseNumber,
		licenseValidUntil: licenseValidUntil,
		isActive:          true,
	}
}

func (u *User) ID() uuid.UUID                 { return u.id }
func (u *User) Email() Email                  { return u.email }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Role() Role                    { return u.role }
func (u *User) LicenseNumber() string         { return u.licenseNumber }
func (u *User) LicenseValidUntil() *time.Time { return u.licenseValidUntil }
func (u *User) LastLogin() *time.Time         { return u.lastLogin }
func (u *User) IsActive() bool                { return u.isActive }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }
