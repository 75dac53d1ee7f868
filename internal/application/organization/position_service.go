package organization

import (
	"context"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PositionService handles position operations
type PositionService struct {
	positionRepo organization.PositionRepository
	unitRepo     organization.UnitRepository
	logger       *zap.Logger
}

// NewPositionService creates a new PositionService
func NewPositionService(
	positionRepo organization.PositionRepository,
	unitRepo organization.UnitRepository,
	logger *zap.Logger,
) *PositionService {
	return &PositionService{
		positionRepo: positionRepo,
		unitRepo:     unitRepo,
		logger:       logger,
	}
}

// Create creates a new position in a unit
func (s *PositionService) Create(ctx context.Context, req CreatePositionRequest) (*PositionResponse, error) {
	if _, err := s.unitRepo.FindByID(ctx, req.UnitID); err != nil {
		return nil, shared.ErrReferenceNotFound
	}

	exists, err := s.positionRepo.ExistsByCode(ctx, req.UnitID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Position with this code already exists in the unit")
	}

	position, err := organization.NewPosition(req.UnitID, req.Code, req.Name, req.Level)
	if err != nil {
		return nil, err
	}
	position.IsCommand = req.IsCommand
	position.CreatedBy = req.CreatedBy

	if err := s.positionRepo.Save(ctx, position); err != nil {
		return nil, err
	}

	s.logger.Info("Position created",
		zap.String("codigo", position.Code),
		zap.String("unidad_id", req.UnitID.String()))

	return ToPositionResponse(position), nil
}

// GetByID retrieves a position
func (s *PositionService) GetByID(ctx context.Context, id uuid.UUID) (*PositionResponse, error) {
	position, err := s.positionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPositionResponse(position), nil
}

// ListByUnit retrieves the positions of a unit
func (s *PositionService) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*PositionResponse, error) {
	positions, err := s.positionRepo.FindByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}

	responses := make([]*PositionResponse, len(positions))
	for i, p := range positions {
		responses[i] = ToPositionResponse(p)
	}
	return responses, nil
}

// Update updates a position
func (s *PositionService) Update(ctx context.Context, id uuid.UUID, req UpdatePositionRequest) (*PositionResponse, error) {
	position, err := s.positionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := position.Update(req.Name, req.Level, req.IsCommand); err != nil {
		return nil, err
	}
	position.UpdatedBy = req.UpdatedBy

	if err := s.positionRepo.Save(ctx, position); err != nil {
		return nil, err
	}
	return ToPositionResponse(position), nil
}

// Deactivate retires a position
func (s *PositionService) Deactivate(ctx context.Context, id uuid.UUID) error {
	position, err := s.positionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	position.Deactivate()
	return s.positionRepo.Save(ctx, position)
}

// Delete soft-deletes a position
func (s *PositionService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.positionRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.positionRepo.Delete(ctx, id, deletedBy)
}
