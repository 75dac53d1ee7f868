package organization

import (
	"context"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FunctionalRoleService handles functional-role operations
type FunctionalRoleService struct {
	repo   organization.FunctionalRoleRepository
	logger *zap.Logger
}

// NewFunctionalRoleService creates a new FunctionalRoleService
func NewFunctionalRoleService(repo organization.FunctionalRoleRepository, logger *zap.Logger) *FunctionalRoleService {
	return &FunctionalRoleService{repo: repo, logger: logger}
}

// Create creates a new functional role
func (s *FunctionalRoleService) Create(ctx context.Context, req CreateFunctionalRoleRequest) (*FunctionalRoleResponse, error) {
	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Functional role with this code already exists")
	}

	role, err := organization.NewFunctionalRole(req.Code, req.Name, req.AuthorityLevel)
	if err != nil {
		return nil, err
	}
	role.CreatedBy = req.CreatedBy

	if err := s.repo.Save(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("Functional role created", zap.String("codigo", role.Code))
	return ToFunctionalRoleResponse(role), nil
}

// GetByID retrieves a functional role
func (s *FunctionalRoleService) GetByID(ctx context.Context, id uuid.UUID) (*FunctionalRoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToFunctionalRoleResponse(role), nil
}

// List retrieves functional roles
func (s *FunctionalRoleService) List(ctx context.Context, onlyActive bool) ([]*FunctionalRoleResponse, error) {
	roles, err := s.repo.FindAll(ctx, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]*FunctionalRoleResponse, len(roles))
	for i, r := range roles {
		responses[i] = ToFunctionalRoleResponse(r)
	}
	return responses, nil
}

// Update updates a functional role
func (s *FunctionalRoleService) Update(ctx context.Context, id uuid.UUID, req UpdateFunctionalRoleRequest) (*FunctionalRoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := role.Update(req.Name, req.AuthorityLevel); err != nil {
		return nil, err
	}
	role.UpdatedBy = req.UpdatedBy

	if err := s.repo.Save(ctx, role); err != nil {
		return nil, err
	}
	return ToFunctionalRoleResponse(role), nil
}

// Deactivate retires a functional role
func (s *FunctionalRoleService) Deactivate(ctx context.Context, id uuid.UUID) error {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	role.Deactivate()
	return s.repo.Save(ctx, role)
}

// Delete soft-deletes a functional role
func (s *FunctionalRoleService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, deletedBy)
}
