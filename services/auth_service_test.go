package services

import (
	"testing"
	"time"

	"tyco-hotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.Admin{
		FullName: "Admin User",
		Email:    email,
		Password: string(hash),
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", time.Hour)
	admin := seedAdmin(t, db, "admin@tycohotel.com", "admin123")

	token, got, err := svc.Login("admin@tycohotel.com", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, admin.ID, got.ID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "admin@tycohotel.com", claims.Email)
}

func TestLoginNormalizesEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", time.Hour)
	seedAdmin(t, db, "admin@tycohotel.com", "admin123")

	_, _, err := svc.Login("  Admin@TycoHotel.com ", "admin123")
	require.NoError(t, err)
}

func TestLoginFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", time.Hour)
	seedAdmin(t, db, "admin@tycohotel.com", "admin123")

	_, _, err := svc.Login("nobody@tycohotel.com", "admin123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = svc.Login("admin@tycohotel.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestValidateTokenRejectsGarbageAndForeignSecrets(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", time.Hour)
	admin := seedAdmin(t, db, "admin@tycohotel.com", "admin123")

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService(db, "other-secret", time.Hour)
	token, err := other.GenerateToken(admin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret", -time.Minute)
	admin := seedAdmin(t, db, "admin@tycohotel.com", "admin123")

	token, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
