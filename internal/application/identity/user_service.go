package identity

import (
	"context"
	"time"

	"github.com/carbyfah/backend/internal/domain/identity"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles account management operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// Create creates a new account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserInfo, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	user, err := identity.NewUser(req.Username, req.Password, req.AccessLevel, req.ProfileID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		if err := user.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	user.CreatedBy = req.CreatedBy

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User account created",
		zap.String("username", user.Username),
		zap.String("nivel_acceso", string(user.AccessLevel)))

	info := ToUserInfo(user, time.Now())
	return &info, nil
}

// GetByID retrieves an account by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := ToUserInfo(user, time.Now())
	return &info, nil
}

// List retrieves accounts with pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserInfo, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.OrderBy = "username"
	domainFilter.OrderDir = "asc"

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	infos := make([]UserInfo, len(users))
	for i, u := range users {
		infos[i] = ToUserInfo(u, now)
	}

	return infos, total, nil
}

// Update updates an account's email and access level
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		if err := user.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.AccessLevel != "" {
		if err := user.ChangeAccessLevel(req.AccessLevel); err != nil {
			return nil, err
		}
	}
	user.UpdatedBy = req.UpdatedBy

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	info := ToUserInfo(user, time.Now())
	return &info, nil
}

// ResetPassword sets a new password without checking the old one
func (s *UserService) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User password reset", zap.String("user_id", id.String()))
	return nil
}

// Activate re-enables an account
func (s *UserService) Activate(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := user.Activate(); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

// Deactivate disables an account
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := user.Deactivate(); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

// Delete soft-deletes an account
func (s *UserService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, id, deletedBy)
}
