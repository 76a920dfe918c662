package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
)

var (
	ErrUserNotFound = errors.New("ο χρήστης δεν βρέθηκε")
	ErrInvalidRole  = errors.New("μη έγκυρος ρόλος χρήστη")
)

// UserService manages user accounts.
type UserService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates the user service.
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetByID returns a user by ID.
func (s *UserService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// UpdateProfile updates the contact fields a user controls on their own record.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.TelephoneNumber = req.TelephoneNumber
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return user, nil
}

// AdminUpdate updates any user's record. No ownership check; callers guard
// with role authorization.
func (s *UserService) AdminUpdate(ctx context.Context, id uint, req *dto.AdminUpdateUserRequest) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != "" {
		if !req.Role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = req.Role
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.TelephoneNumber != "" {
		user.TelephoneNumber = req.TelephoneNumber
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	s.logger.Info("user updated by admin", zap.Uint("user_id", id))
	return user, nil
}

// List returns users matching the query with pagination.
func (s *UserService) List(ctx context.Context, q *dto.ListUsersQuery) ([]model.User, int64, error) {
	if q.Role != "" && !q.Role.Valid() {
		return nil, 0, ErrInvalidRole
	}
	users, total, err := s.userRepo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}
	return users, total, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	s.logger.Info("user deleted", zap.Uint("user_id", id))
	return nil
}
