package services

import (
	"net/http"
	"testing"

	"marlink_backend/internal/auth"
	"marlink_backend/internal/config"
	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) Delete(userID string) error {
	for email, u := range f.users {
		if u.ID == userID {
			delete(f.users, email)
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.AdminSetupKey = "letmein-setup"
	config.AppConfig = cfg
	return cfg
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role models.UserRole) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&models.User{
		BaseModel:    models.BaseModel{ID: "user-" + email},
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}))
}

func TestAuthService_LoginSuccess(t *testing.T) {
	cfg := testConfig(t)
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@marlink.example", "correct-horse", models.UserRoleAdmin)
	svc := NewAuthService(repo, cfg)

	resp, err := svc.Login(&dto.LoginRequest{Email: "admin@marlink.example", Password: "correct-horse"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@marlink.example", resp.Data.Email)
	assert.Equal(t, models.UserRoleAdmin, resp.Data.Role)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Data.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	cfg := testConfig(t)
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@marlink.example", "correct-horse", models.UserRoleAdmin)
	svc := NewAuthService(repo, cfg)

	// Wrong password and unknown email answer identically.
	_, err := svc.Login(&dto.LoginRequest{Email: "admin@marlink.example", Password: "wrong"})
	assertHTTPCode(t, err, http.StatusUnauthorized)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@marlink.example", Password: "correct-horse"})
	assertHTTPCode(t, err, http.StatusUnauthorized)
}

func TestAuthService_CreateAdmin(t *testing.T) {
	cfg := testConfig(t)
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, cfg)

	user, err := svc.CreateAdmin(&dto.CreateAdminRequest{
		SetupKey: "letmein-setup",
		Email:    "new-admin@marlink.example",
		Password: "strong-password",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, user.Role)

	// Duplicate email is a conflict.
	_, err = svc.CreateAdmin(&dto.CreateAdminRequest{
		SetupKey: "letmein-setup",
		Email:    "new-admin@marlink.example",
		Password: "strong-password",
	})
	assertHTTPCode(t, err, http.StatusConflict)
}

func TestAuthService_CreateAdminKeyChecks(t *testing.T) {
	cfg := testConfig(t)
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, cfg)

	_, err := svc.CreateAdmin(&dto.CreateAdminRequest{
		SetupKey: "wrong-key",
		Email:    "x@marlink.example",
		Password: "strong-password",
	})
	assertHTTPCode(t, err, http.StatusForbidden)

	cfg.AdminSetupKey = ""
	_, err = svc.CreateAdmin(&dto.CreateAdminRequest{
		SetupKey: "",
		Email:    "x@marlink.example",
		Password: "strong-password",
	})
	assertHTTPCode(t, err, http.StatusForbidden)
}

func TestAuthService_CreateAdminWeakPassword(t *testing.T) {
	cfg := testConfig(t)
	svc := NewAuthService(newFakeUserRepo(), cfg)

	_, err := svc.CreateAdmin(&dto.CreateAdminRequest{
		SetupKey: "letmein-setup",
		Email:    "x@marlink.example",
		Password: "short",
	})
	assertHTTPCode(t, err, http.StatusBadRequest)
}
