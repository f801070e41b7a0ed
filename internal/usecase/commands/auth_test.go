//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carental/internal/domain/user"
	reqdto "carental/internal/handler/dto/request"
	"carental/internal/infra"
	"carental/internal/pkg/jwt"
	"carental/internal/pkg/password"
	"carental/internal/usecase/commands"
	"carental/tests/common/builder"
	commandsmock "carental/tests/mock/commands"
	queriesmock "carental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	userRepo   *commandsmock.MockUserRepository
	readStore  *queriesmock.MockUserReadStore
	jwtService *jwt.Service
}

func newAuthCommands(t *testing.T) (commands.AuthCommands, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		userRepo:   commandsmock.NewMockUserRepository(ctrl),
		readStore:  queriesmock.NewMockUserReadStore(ctrl),
		jwtService: jwt.NewService("test-secret-key", 15*time.Minute, 24*time.Hour),
	}

	uc := commands.NewAuthCommands(m.userRepo, m.readStore, m.jwtService)
	return uc, m
}

func reqdtoLogin(email, pw string) reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: email, Password: pw}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success: customer registered with license", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		b := builder.NewUserBuilder()
		req := b.BuildRegisterRequestDTO()

		var created *user.User
		m.userRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (uuid.UUID, error) {
				created = u
				return b.ID, nil
			})

		userID, err := uc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, b.ID, userID)

		require.NotNil(t, created)
		assert.Equal(t, b.Email, created.Email().Value())
		assert.Equal(t, user.RoleCustomer, created.Role())
		assert.Equal(t, b.LicenseNumber, created.LicenseNumber())
		require.NoError(t, password.ComparePassword(created.PasswordHash(), b.Password))
	})

	t.Run("success: registration without a license", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		b := builder.NewUserBuilder().WithoutLicense()
		req := b.BuildRegisterRequestDTO()

		var created *user.User
		m.userRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (uuid.UUID, error) {
				created = u
				return b.ID, nil
			})

		_, err := uc.Register(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Empty(t, created.LicenseNumber())
		assert.Nil(t, created.LicenseValidUntil())
	})

	t.Run("error: email already registered", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		req := builder.NewUserBuilder().BuildRegisterRequestDTO()

		duplicate := infra.WrapRepoErr("failed to create user",
			&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		m.userRepo.EXPECT().Create(ctx, gomock.Any()).Return(uuid.Nil, duplicate)

		_, err := uc.Register(ctx, req)
		requireIs(t, err, commands.ErrEmailAlreadyUsed)
	})

	t.Run("error: password too weak", func(t *testing.T) {
		uc, _ := newAuthCommands(t)

		b := builder.NewUserBuilder()
		b.Password = "short"
		req := b.BuildRegisterRequestDTO()

		_, err := uc.Register(ctx, req)
		requireIs(t, err, commands.ErrAuthenticationFailed)
	})

	t.Run("error: malformed email", func(t *testing.T) {
		uc, _ := newAuthCommands(t)

		req := builder.NewUserBuilder().WithEmail("not-an-email").BuildRegisterRequestDTO()

		_, err := uc.Register(ctx, req)
		requireIs(t, err, commands.ErrAuthenticationFailed)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	b := builder.NewUserBuilder()
	loginReq := reqdtoLogin(b.Email, b.Password)

	hash, err := password.HashPassword(b.Password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	t.Run("success: token pair issued", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(b.BuildReadModel(), hash, nil)
		m.userRepo.EXPECT().UpdateLastLogin(ctx, b.ID).Return(nil)

		result, err := uc.Login(ctx, loginReq)
		require.NoError(t, err)
		assert.Equal(t, b.ID, result.UserID)

		claims, err := m.jwtService.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, b.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

		claims, err = m.jwtService.ValidateToken(result.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("success: last-login bookkeeping failure does not block login", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(b.BuildReadModel(), hash, nil)
		m.userRepo.EXPECT().UpdateLastLogin(ctx, b.ID).Return(errors.New("connection reset"))

		result, err := uc.Login(ctx, loginReq)
		require.NoError(t, err)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(b.BuildReadModel(), hash, nil)

		_, err := uc.Login(ctx, reqdtoLogin(b.Email, "wrong-password"))
		requireIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: unknown email maps to the same error as a wrong password", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		notFound := infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(nil, "", notFound)

		_, err := uc.Login(ctx, loginReq)
		requireIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: deactivated account", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		inactive := builder.NewUserBuilder().WithID(b.ID).WithEmail(b.Email).AsInactive().BuildReadModel()
		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(inactive, hash, nil)

		_, err := uc.Login(ctx, loginReq)
		requireIs(t, err, commands.ErrUserInactive)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	b := builder.NewUserBuilder()

	t.Run("success: new token pair from a valid refresh token", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		refreshToken, err := m.jwtService.GenerateRefreshToken(b.ID, user.RoleCustomer)
		require.NoError(t, err)

		m.readStore.EXPECT().FindByID(ctx, b.ID).Return(b.BuildReadModel(), nil)

		pair, err := uc.RefreshToken(ctx, refreshToken)
		require.NoError(t, err)

		claims, err := m.jwtService.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, b.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("error: access token presented as refresh token", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		accessToken, err := m.jwtService.GenerateAccessToken(b.ID, user.RoleCustomer)
		require.NoError(t, err)

		_, err = uc.RefreshToken(ctx, accessToken)
		requireIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		uc, _ := newAuthCommands(t)

		_, err := uc.RefreshToken(ctx, "not.a.token")
		requireIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: token signed with a different secret", func(t *testing.T) {
		uc, _ := newAuthCommands(t)

		other := jwt.NewService("other-secret", 15*time.Minute, 24*time.Hour)
		forged, err := other.GenerateRefreshToken(b.ID, user.RoleCustomer)
		require.NoError(t, err)

		_, err = uc.RefreshToken(ctx, forged)
		requireIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: user deleted since the token was issued", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		refreshToken, err := m.jwtService.GenerateRefreshToken(b.ID, user.RoleCustomer)
		require.NoError(t, err)

		notFound := infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
		m.readStore.EXPECT().FindByID(ctx, b.ID).Return(nil, notFound)

		_, err = uc.RefreshToken(ctx, refreshToken)
		requireIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("error: user deactivated since the token was issued", func(t *testing.T) {
		uc, m := newAuthCommands(t)

		refreshToken, err := m.jwtService.GenerateRefreshToken(b.ID, user.RoleCustomer)
		require.NoError(t, err)

		inactive := builder.NewUserBuilder().WithID(b.ID).AsInactive().BuildReadModel()
		m.readStore.EXPECT().FindByID(ctx, b.ID).Return(inactive, nil)

		_, err = uc.RefreshToken(ctx, refreshToken)
		requireIs(t, err, commands.ErrUserInactive)
	})
}
