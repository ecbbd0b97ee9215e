// internal/services/user_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierkado/boutique-backend/internal/apperrors"
	"github.com/atelierkado/boutique-backend/internal/models"
	"github.com/atelierkado/boutique-backend/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

type UpdateUserRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty" validate:"omitempty,strong_password"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.db.Model(&models.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "name", "email"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	return users, total, nil
}

func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}
	return &user, nil
}

func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		var existing models.User
		if err := s.db.Where("email = ? AND id <> ?", req.Email, id).First(&existing).Error; err == nil {
			return nil, apperrors.New(apperrors.KindConflict, "user with this email already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
		}
		user.Email = req.Email
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, "failed to hash password", err)
		}
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to update user", err)
	}

	return user, nil
}

func (s *UserService) DeleteUser(id uuid.UUID) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(user).Error; err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to delete user", err)
	}
	return nil
}
