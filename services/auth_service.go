package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tyco-hotel-backend/models"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Identity-provider error taxonomy. The controller collapses user-not-found
// and wrong-password into one "invalid credentials" response so login
// attempts cannot probe for accounts.
var (
	ErrUserNotFound  = errors.New("user_not_found")
	ErrWrongPassword = errors.New("wrong_password")
	ErrInvalidToken  = errors.New("invalid_token")
)

type AdminClaims struct {
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	jwtlib.RegisteredClaims
}

type AuthService struct {
	DB     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:     db,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Login verifies an admin's email/password pair and returns a signed access
// token together with the admin record.
func (s *AuthService) Login(email, password string) (string, models.Admin, error) {
	var admin models.Admin

	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", admin, ErrUserNotFound
		}
		return "", admin, fmt.Errorf("failed to load admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", admin, ErrWrongPassword
	}

	token, err := s.GenerateToken(admin)
	if err != nil {
		return "", admin, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, admin, nil
}

func (s *AuthService) GenerateToken(admin models.Admin) (string, error) {
	claims := AdminClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) ValidateToken(tokenStr string) (*AdminClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
