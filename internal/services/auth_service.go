// internal/services/auth_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/atelierkado/boutique-backend/internal/apperrors"
	"github.com/atelierkado/boutique-backend/internal/config"
	"github.com/atelierkado/boutique-backend/internal/models"
	"github.com/atelierkado/boutique-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	if req.Password != req.ConfirmPassword {
		return nil, apperrors.New(apperrors.KindValidation, "passwords do not match")
	}

	// Email uniqueness is enforced at creation
	var existingUser models.User
	if err := s.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return nil, apperrors.New(apperrors.KindConflict, "user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to hash password", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to create user", err)
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to generate token", err)
	}

	return &AuthResponse{
		User:      user,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.cfg.JWT.TokenTTL * 3600,
	}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password return the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindUnauthorized, "invalid email or password")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, apperrors.New(apperrors.KindUnauthorized, "invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to generate token", err)
	}

	return &AuthResponse{
		User:      &user,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.cfg.JWT.TokenTTL * 3600,
	}, nil
}
