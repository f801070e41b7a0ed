//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"carental/internal/handler/dto/request"
	"carental/tests/common/dbtest"
	"carental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Extract access token from cookie
	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin registers a customer with a long-lived license and logs in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	validUntil := time.Date(2035, 12, 31, 0, 0, 0, 0, time.UTC)
	dbtest.CreateTestUser(t, db, email, role, "DL-"+email, &validUntil)
	return LoginUser(t, router, email, "password123")
}

// CreateAndLoginWithLicense creates a customer whose license expires on the
// given day and logs in.
func CreateAndLoginWithLicense(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string, licenseValidUntil time.Time) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, "customer", "DL-"+email, &licenseValidUntil)
	return LoginUser(t, router, email, "password123")
}

// CreateAndLoginWithoutLicense creates a customer with no license on file.
func CreateAndLoginWithoutLicense(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, "customer", "", nil)
	return LoginUser(t, router, email, "password123")
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
