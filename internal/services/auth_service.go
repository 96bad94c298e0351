package services

import (
	"crypto/subtle"

	"marlink_backend/internal/auth"
	"marlink_backend/internal/config"
	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/services/dto"
	"marlink_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	CreateAdmin(req *dto.CreateAdminRequest) (*dto.UserData, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Login authenticates by email+password and issues an access token.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		Data: dto.UserData{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// CreateAdmin creates an admin account when the shared setup key matches.
func (s *AuthServiceImpl) CreateAdmin(req *dto.CreateAdminRequest) (*dto.UserData, error) {
	if s.cfg.AdminSetupKey == "" {
		return nil, apperrors.NewForbiddenError("Admin setup is disabled")
	}
	if subtle.ConstantTimeCompare([]byte(req.SetupKey), []byte(s.cfg.AdminSetupKey)) != 1 {
		return nil, apperrors.NewForbiddenError("Invalid setup key")
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("auth", "A user with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserData{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
