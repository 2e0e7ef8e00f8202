package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/config"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/middleware"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
)

// AuthService issues bearer tokens for staff users and customers. Refresh
// tokens live in redis so logout can revoke them.
type AuthService struct {
	userRepo     *repository.UserRepository
	customerRepo *repository.CustomerRepository
	rdb          *redis.Client
	cfg          config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, customerRepo *repository.CustomerRepository, rdb *redis.Client, cfg config.JWTConfig) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		rdb:          rdb,
		cfg:          cfg,
	}
}

// LoginResult is the password-grant response.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	SubjectID    string `json:"subject_id"`
	UserName     string `json:"username"`
	Role         string `json:"role"`
}

// LoginUser authenticates a staff account by username and password.
func (s *AuthService) LoginUser(ctx context.Context, userName, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, user.UserID, user.UserName, user.Role)
}

// LoginCustomer authenticates a customer account; the role is always Customer.
func (s *AuthService) LoginCustomer(ctx context.Context, userName, password string) (*LoginResult, error) {
	customer, err := s.customerRepo.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, customer.CustomerID, customer.CustomerUserName, entity.RoleCustomer)
}

// Refresh exchanges a live refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if s.rdb == nil {
		return nil, ErrInvalidRefresh
	}
	payload, err := s.rdb.Get(ctx, refreshKey(refreshToken)).Result()
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	var session refreshSession
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, ErrInvalidRefresh
	}

	s.rdb.Del(ctx, refreshKey(refreshToken))
	return s.issue(ctx, session.Subject, session.UserName, session.Role)
}

// Logout revokes the refresh token. Access tokens simply expire.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if s.rdb == nil || refreshToken == "" {
		return nil
	}
	return s.rdb.Del(ctx, refreshKey(refreshToken)).Err()
}

// HashPassword hashes a plaintext password for storage.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) issue(ctx context.Context, subject, userName, role string) (*LoginResult, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTokenExpire)

	claims := middleware.JWTClaims{
		UserName: userName,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, err
	}

	result := &LoginResult{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.cfg.AccessTokenExpire.Seconds()),
		SubjectID:   subject,
		UserName:    userName,
		Role:        role,
	}

	if s.rdb != nil {
		refreshToken := uuid.New().String()
		payload, err := json.Marshal(refreshSession{Subject: subject, UserName: userName, Role: role})
		if err != nil {
			return nil, err
		}
		// Login must not fail when redis is down; the client just gets no
		// refresh token.
		if err := s.rdb.Set(ctx, refreshKey(refreshToken), payload, s.cfg.RefreshTokenExpire).Err(); err == nil {
			result.RefreshToken = refreshToken
		}
	}

	return result, nil
}

type refreshSession struct {
	Subject  string `json:"sub"`
	UserName string `json:"username"`
	Role     string `json:"role"`
}

func refreshKey(token string) string {
	return "auth:refresh:" + token
}
