package request

import (
	"time"

	"carental/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8"`
	LicenseNumber     string `json:"license_number,omitempty"`
	LicenseValidUntil string `json:"license_valid_until,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r *RegisterRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// LicenseValidUntilTime returns the parsed expiry date, or nil when the
// customer registered without a license. Format errors are caught by binding.
func (r *RegisterRequest) LicenseValidUntilTime() *time.Time {
	if r.LicenseValidUntil == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", r.LicenseValidUntil)
	if err != nil {
		return nil
	}
	return &t
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
