package organization

import (
	"context"
	"errors"
	"time"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnitService handles organizational-unit operations
type UnitService struct {
	unitRepo     organization.UnitRepository
	positionRepo organization.PositionRepository
	cache        OrganigramCache
	logger       *zap.Logger
}

// NewUnitService creates a new UnitService
func NewUnitService(
	unitRepo organization.UnitRepository,
	positionRepo organization.PositionRepository,
	cache OrganigramCache,
	logger *zap.Logger,
) *UnitService {
	return &UnitService{
		unitRepo:     unitRepo,
		positionRepo: positionRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Create creates a new unit, under a parent when one is given
func (s *UnitService) Create(ctx context.Context, req CreateUnitRequest) (*UnitResponse, error) {
	exists, err := s.unitRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Unit with this code already exists")
	}

	unit, err := organization.NewOrganizationalUnit(req.Code, req.Name, req.StructureTypeID)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.unitRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent unit not found")
			}
			return nil, err
		}
		if err := unit.SetParent(parent); err != nil {
			return nil, err
		}
	}

	if err := unit.Update(unit.Name, req.HorizontalOrder, req.Capacity); err != nil {
		return nil, err
	}
	unit.CreatedBy = req.CreatedBy

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	s.invalidateOrganigram(ctx)
	s.logger.Info("Unit created",
		zap.String("codigo", unit.Code),
		zap.Int("nivel", unit.Level))

	return ToUnitResponse(unit), nil
}

// GetByID retrieves a unit
func (s *UnitService) GetByID(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUnitResponse(unit), nil
}

// List retrieves all units, operational ones only when requested
func (s *UnitService) List(ctx context.Context, onlyOperational bool) ([]*UnitResponse, error) {
	var (
		units []*organization.OrganizationalUnit
		err   error
	)
	if onlyOperational {
		units, err = s.unitRepo.FindOperational(ctx, time.Now())
	} else {
		units, err = s.unitRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*UnitResponse, len(units))
	for i, u := range units {
		responses[i] = ToUnitResponse(u)
	}
	return responses, nil
}

// GetChildren retrieves the direct children of a unit
func (s *UnitService) GetChildren(ctx context.Context, parentID uuid.UUID) ([]*UnitResponse, error) {
	children, err := s.unitRepo.FindChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}

	responses := make([]*UnitResponse, len(children))
	for i, u := range children {
		responses[i] = ToUnitResponse(u)
	}
	return responses, nil
}

// GetHierarchyPath returns the root-first command chain of a unit
func (s *UnitService) GetHierarchyPath(ctx context.Context, unitID uuid.UUID) (*HierarchyPathResponse, error) {
	path, err := organization.HierarchyPath(ctx, s.unitRepo, unitID)
	if err != nil {
		return nil, err
	}
	return &HierarchyPathResponse{UnitID: unitID, Path: path}, nil
}

// Update updates a unit, moving it when the parent changes
func (s *UnitService) Update(ctx context.Context, id uuid.UUID, req UpdateUnitRequest) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sameParent(unit.ParentID, req.ParentID) {
		var parent *organization.OrganizationalUnit
		if req.ParentID != nil {
			parent, err = s.unitRepo.FindByID(ctx, *req.ParentID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return nil, shared.NewDomainError("INVALID_PARENT", "Parent unit not found")
				}
				return nil, err
			}

			// The new parent must not descend from the unit being moved.
			path, err := organization.HierarchyPath(ctx, s.unitRepo, parent.ID)
			if err != nil {
				return nil, err
			}
			for _, code := range path {
				if code == unit.Code {
					return nil, shared.NewDomainError("CIRCULAR_REFERENCE", "Cannot move unit under its own descendant")
				}
			}
		}
		if err := unit.SetParent(parent); err != nil {
			return nil, err
		}
	}

	if err := unit.Update(req.Name, req.HorizontalOrder, req.Capacity); err != nil {
		return nil, err
	}
	unit.UpdatedBy = req.UpdatedBy

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	s.invalidateOrganigram(ctx)
	return ToUnitResponse(unit), nil
}

// Deactivate deactivates a unit, immediately or at a scheduled date
func (s *UnitService) Deactivate(ctx context.Context, id uuid.UUID, req DeactivateUnitRequest) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.At != nil {
		err = unit.ScheduleDeactivation(*req.At)
	} else {
		err = unit.Deactivate()
	}
	if err != nil {
		return nil, err
	}
	unit.UpdatedBy = req.UpdatedBy

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	s.invalidateOrganigram(ctx)
	return ToUnitResponse(unit), nil
}

// Reactivate restores a deactivated unit
func (s *UnitService) Reactivate(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unit.Reactivate()

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	s.invalidateOrganigram(ctx)
	return ToUnitResponse(unit), nil
}

// Delete soft-deletes a unit. Units with children cannot be deleted.
func (s *UnitService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.unitRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasChildren, err := s.unitRepo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return shared.NewDomainError("HAS_CHILDREN", "Cannot delete a unit with subordinate units")
	}

	if err := s.unitRepo.Delete(ctx, id, deletedBy); err != nil {
		return err
	}

	s.invalidateOrganigram(ctx)
	return nil
}

func (s *UnitService) invalidateOrganigram(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate organigram cache", zap.Error(err))
	}
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
