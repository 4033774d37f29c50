package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"lofinight/internal/entity"
	"lofinight/internal/repository"
)

// UserService covers profile reads/updates and the admin user operations.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

type UpdateProfileInput struct {
	FullName    *string
	Avatar      *string
	Bio         *string
	Phone       *string
	Location    *string
	Preferences datatypes.JSON
}

func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Preferences != nil {
		user.Preferences = input.Preferences
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, query repository.ListUsersQuery) ([]entity.User, int64, error) {
	return s.users.List(ctx, query)
}

// UpdateStatus soft-disables or re-enables an account.
func (s *UserService) UpdateStatus(ctx context.Context, userID uuid.UUID, isActive bool) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.users.UpdateStatus(ctx, userID, isActive)
}

// Delete removes the user permanently. Admin-only; soft disable is the
// normal path.
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, userID)
}
