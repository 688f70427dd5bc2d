package service

import (
	"context"
	"errors"
	"fmt"

	"galactic_pets/internal/common"
	"galactic_pets/internal/common/security"
	"galactic_pets/internal/domain/model"
	"galactic_pets/internal/domain/repository"

	"github.com/google/uuid"
)

// UserAdminService backs the admin dashboard: user listing, user deletion and
// the one-time admin bootstrap.
type UserAdminService struct {
	userRepo      repository.UserRepository
	adminEmail    string
	adminPassword string
}

func NewUserAdminService(userRepo repository.UserRepository, adminEmail, adminPassword string) *UserAdminService {
	return &UserAdminService{userRepo: userRepo, adminEmail: adminEmail, adminPassword: adminPassword}
}

func (s *UserAdminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// DeleteUser removes the target account. An admin may not delete the account
// matching their own session email.
func (s *UserAdminService) DeleteUser(ctx context.Context, actorEmail, targetID string) error {
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Email == actorEmail {
		return fmt.Errorf("cannot delete your own admin account: %w", common.ErrForbidden)
	}
	return s.userRepo.Delete(ctx, targetID)
}

type SetupCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BootstrapAdmin creates the fixed admin account on first call and reports
// AlreadyExists afterwards. The credentials are returned so an operator can
// log in once and change them.
func (s *UserAdminService) BootstrapAdmin(ctx context.Context) (*SetupCredentials, error) {
	_, err := s.userRepo.FindByEmail(ctx, s.adminEmail)
	if err == nil {
		return nil, fmt.Errorf("admin user already exists: %w", common.ErrAlreadyExists)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for admin user: %w", err)
	}

	hashedPassword, err := security.HashPassword(s.adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		ID:             uuid.NewString(),
		Email:          s.adminEmail,
		HashedPassword: hashedPassword,
		Role:           model.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return &SetupCredentials{Email: s.adminEmail, Password: s.adminPassword}, nil
}
