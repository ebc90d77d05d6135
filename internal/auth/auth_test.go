package auth

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/greenmart/pos/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RefreshToken{}))

	return &Service{
		DB:            db,
		JWTSecret:     []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, "Admin@GreenMart.cl", "secret", RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "admin@greenmart.cl", user.Email)
	require.Equal(t, RoleAdmin, user.Role)
	require.NotEqual(t, "secret", user.PasswordHash)

	got, pair, err := svc.Login(ctx, "admin@greenmart.cl", "secret")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := ValidateAccess(pair.Access, svc.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, claims["role"])
}

func TestLoginBadPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "cajero@greenmart.cl", "secret", RoleCashier)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "cajero@greenmart.cl", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, _, err = svc.Login(ctx, "nadie@greenmart.cl", "secret")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "x@greenmart.cl", "a", RoleCashier)
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "x@greenmart.cl", "b", RoleCashier)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestNonAdminRoleDowngradesToCashier(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.RegisterUser(context.Background(), "y@greenmart.cl", "a", "superuser")
	require.NoError(t, err)
	require.Equal(t, RoleCashier, user.Role)
}

func TestRotateRevokesOldRefreshToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "z@greenmart.cl", "a", RoleAdmin)
	require.NoError(t, err)

	_, pair, err := svc.Login(ctx, "z@greenmart.cl", "a")
	require.NoError(t, err)

	fresh, role, err := svc.Rotate(pair.Refresh)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, role)
	require.NotEqual(t, pair.Refresh, fresh.Refresh)

	// the consumed token cannot be used again
	_, _, err = svc.Rotate(pair.Refresh)
	require.Error(t, err)
}

func TestValidateRefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService(t)

	access, err := SignAccessToken(1, RoleAdmin, svc.RefreshSecret)
	require.NoError(t, err)

	_, err = ValidateRefresh(access, svc.RefreshSecret, svc.DB)
	require.Error(t, err)
}
