package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/config"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/middleware"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/testutil"
)

func newAuthTestService(t *testing.T) (*AuthService, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewAuthService(repos.User, repos.Customer, nil, config.JWTConfig{
		Secret:             testutil.TestJWTSecret,
		Issuer:             "kandypack",
		AccessTokenExpire:  time.Hour,
		RefreshTokenExpire: 24 * time.Hour,
	})
	return svc, repos
}

func seedUser(t *testing.T, svc *AuthService, repos *repository.Repositories, userName, password, role string) {
	t.Helper()
	hash, err := svc.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, repos.User.Create(context.Background(), &entity.User{
		UserID:       "u-" + userName,
		UserName:     userName,
		PasswordHash: hash,
		Role:         role,
	}))
}

func TestLoginUser(t *testing.T) {
	svc, repos := newAuthTestService(t)
	seedUser(t, svc, repos, "amara", "s3cret-pass", entity.RoleManagement)

	result, err := svc.LoginUser(context.Background(), "amara", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, entity.RoleManagement, result.Role)
	assert.Empty(t, result.RefreshToken)

	claims := &middleware.JWTClaims{}
	_, err = jwt.ParseWithClaims(result.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testutil.TestJWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "u-amara", claims.Subject)
	assert.Equal(t, "amara", claims.UserName)
	assert.Equal(t, entity.RoleManagement, claims.Role)
}

func TestLoginUserWrongPassword(t *testing.T) {
	svc, repos := newAuthTestService(t)
	seedUser(t, svc, repos, "amara", "s3cret-pass", entity.RoleManagement)

	_, err := svc.LoginUser(context.Background(), "amara", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserUnknown(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.LoginUser(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginCustomerAlwaysCustomerRole(t *testing.T) {
	svc, repos := newAuthTestService(t)
	hash, err := svc.HashPassword("customer-pass")
	require.NoError(t, err)
	require.NoError(t, repos.Customer.Create(context.Background(), &entity.Customer{
		CustomerID:       "c1",
		CustomerUserName: "nimal",
		CustomerName:     "Nimal Perera",
		PhoneNumber:      "0771234567",
		Address:          "12 Lake Rd",
		PasswordHash:     hash,
	}))

	result, err := svc.LoginCustomer(context.Background(), "nimal", "customer-pass")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, result.Role)
	assert.Equal(t, "c1", result.SubjectID)
}

func TestLoginUserRedisUnreachable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { rdb.Close() })
	svc := NewAuthService(repos.User, repos.Customer, rdb, config.JWTConfig{
		Secret:             testutil.TestJWTSecret,
		Issuer:             "kandypack",
		AccessTokenExpire:  time.Hour,
		RefreshTokenExpire: 24 * time.Hour,
	})
	seedUser(t, svc, repos, "amara", "s3cret-pass", entity.RoleManagement)

	result, err := svc.LoginUser(context.Background(), "amara", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Empty(t, result.RefreshToken)
}

func TestRefreshWithoutStore(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Refresh(context.Background(), "some-token")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
	assert.NoError(t, svc.Logout(context.Background(), "some-token"))
}
