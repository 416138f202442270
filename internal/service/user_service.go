package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hizmetpinari/internal/access"
	errs "hizmetpinari/internal/errors"
	"hizmetpinari/internal/model"
	"hizmetpinari/internal/repository"
)

// UserService covers the admin-only user management surface.
type UserService interface {
	ListUsers(ctx context.Context, actor access.Actor, role model.Role, offset, limit int) ([]model.User, error)
	GetUser(ctx context.Context, actor access.Actor, id uint) (*model.User, error)
	CreateAdmin(ctx context.Context, actor access.Actor, email, password, firstName, lastName string) (*model.User, error)
	SetUserActive(ctx context.Context, actor access.Actor, id uint, active bool) (*model.User, error)
	DeleteUser(ctx context.Context, actor access.Actor, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers lists users, optionally filtered by role.
func (s *userService) ListUsers(ctx context.Context, actor access.Actor, role model.Role, offset, limit int) ([]model.User, error) {
	if err := access.CanManageUsers(actor); err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx, role, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser fetches a single user.
func (s *userService) GetUser(ctx context.Context, actor access.Actor, id uint) (*model.User, error) {
	if err := access.CanManageUsers(actor); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// CreateAdmin creates a new admin user. Admins cannot register themselves
// through the public endpoint.
func (s *userService) CreateAdmin(ctx context.Context, actor access.Actor, email, password, firstName, lastName string) (*model.User, error) {
	if err := access.CanManageUsers(actor); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return user, nil
}

// SetUserActive toggles a user's active flag.
func (s *userService) SetUserActive(ctx context.Context, actor access.Actor, id uint, active bool) (*model.User, error) {
	if err := access.CanManageUsers(actor); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user record.
func (s *userService) DeleteUser(ctx context.Context, actor access.Actor, id uint) error {
	if err := access.CanManageUsers(actor); err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	return s.userRepo.Delete(ctx, id)
}
