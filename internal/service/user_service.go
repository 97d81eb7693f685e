// Package service implements business rules on top of the repositories:
// input validation and per-resource ownership policy.
package service

import (
	"context"

	"shanyraq/internal/models"
	"shanyraq/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched; only fields explicitly present in the request are changed.
type UpdateProfileInput struct {
	UserID uint
	Phone  *string
	Name   *string
	City   *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxFieldLen = 100

	if in.Phone != nil {
		if len(*in.Phone) > maxFieldLen {
			return nil, models.NewValidationError("Phone too long (max 100 characters)")
		}
		user.Phone = in.Phone
	}
	if in.Name != nil {
		if len(*in.Name) > maxFieldLen {
			return nil, models.NewValidationError("Name too long (max 100 characters)")
		}
		user.Name = in.Name
	}
	if in.City != nil {
		if len(*in.City) > maxFieldLen {
			return nil, models.NewValidationError("City too long (max 100 characters)")
		}
		user.City = in.City
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the user; owned listings and comments go with it.
func (s *UserService) DeleteAccount(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
