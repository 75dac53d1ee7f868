package catalog

import (
	"context"

	"github.com/carbyfah/backend/internal/domain/catalog"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StructureTypeService handles structure-type catalog operations
type StructureTypeService struct {
	repo   catalog.StructureTypeRepository
	logger *zap.Logger
}

// NewStructureTypeService creates a new StructureTypeService
func NewStructureTypeService(repo catalog.StructureTypeRepository, logger *zap.Logger) *StructureTypeService {
	return &StructureTypeService{repo: repo, logger: logger}
}

// Create creates a new structure type
func (s *StructureTypeService) Create(ctx context.Context, req CreateStructureTypeRequest) (*StructureTypeResponse, error) {
	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Structure type with this code already exists")
	}

	st, err := catalog.NewStructureType(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := st.Update(st.Name, req.Description); err != nil {
			return nil, err
		}
	}
	st.CreatedBy = req.CreatedBy

	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.logger.Info("Structure type created", zap.String("codigo", st.Code))
	return ToStructureTypeResponse(st), nil
}

// GetByID retrieves a structure type
func (s *StructureTypeService) GetByID(ctx context.Context, id uuid.UUID) (*StructureTypeResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToStructureTypeResponse(st), nil
}

// List retrieves structure types, optionally only active ones
func (s *StructureTypeService) List(ctx context.Context, onlyActive bool) ([]*StructureTypeResponse, error) {
	items, err := s.repo.FindAll(ctx, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]*StructureTypeResponse, len(items))
	for i, st := range items {
		responses[i] = ToStructureTypeResponse(st)
	}
	return responses, nil
}

// Update updates a structure type
func (s *StructureTypeService) Update(ctx context.Context, id uuid.UUID, req UpdateStructureTypeRequest) (*StructureTypeResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := st.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	st.UpdatedBy = req.UpdatedBy

	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return ToStructureTypeResponse(st), nil
}

// Deactivate retires a structure type
func (s *StructureTypeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	st.Deactivate()
	return s.repo.Save(ctx, st)
}

// Delete soft-deletes a structure type
func (s *StructureTypeService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, deletedBy)
}

// GradeService handles grade catalog operations
type GradeService struct {
	repo   catalog.GradeRepository
	logger *zap.Logger
}

// NewGradeService creates a new GradeService
func NewGradeService(repo catalog.GradeRepository, logger *zap.Logger) *GradeService {
	return &GradeService{repo: repo, logger: logger}
}

// Create creates a new grade
func (s *GradeService) Create(ctx context.Context, req CreateGradeRequest) (*GradeResponse, error) {
	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Grade with this code already exists")
	}

	g, err := catalog.NewGrade(req.Code, req.Name, req.Abbreviation, req.Order)
	if err != nil {
		return nil, err
	}
	g.CreatedBy = req.CreatedBy

	if err := s.repo.Save(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("Grade created", zap.String("codigo", g.Code), zap.Int("orden", g.Order))
	return ToGradeResponse(g), nil
}

// GetByID retrieves a grade
func (s *GradeService) GetByID(ctx context.Context, id uuid.UUID) (*GradeResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToGradeResponse(g), nil
}

// List retrieves grades ordered by rank
func (s *GradeService) List(ctx context.Context, onlyActive bool) ([]*GradeResponse, error) {
	items, err := s.repo.FindAll(ctx, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]*GradeResponse, len(items))
	for i, g := range items {
		responses[i] = ToGradeResponse(g)
	}
	return responses, nil
}

// Update updates a grade
func (s *GradeService) Update(ctx context.Context, id uuid.UUID, req UpdateGradeRequest) (*GradeResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := g.Update(req.Name, req.Abbreviation, req.Order); err != nil {
		return nil, err
	}
	g.UpdatedBy = req.UpdatedBy

	if err := s.repo.Save(ctx, g); err != nil {
		return nil, err
	}
	return ToGradeResponse(g), nil
}

// Deactivate retires a grade
func (s *GradeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	g.Deactivate()
	return s.repo.Save(ctx, g)
}

// Delete soft-deletes a grade
func (s *GradeService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, deletedBy)
}

// ServiceStatusService handles service-status catalog operations
type ServiceStatusService struct {
	repo   catalog.ServiceStatusRepository
	logger *zap.Logger
}

// NewServiceStatusService creates a new ServiceStatusService
func NewServiceStatusService(repo catalog.ServiceStatusRepository, logger *zap.Logger) *ServiceStatusService {
	return &ServiceStatusService{repo: repo, logger: logger}
}

// Create creates a new service status
func (s *ServiceStatusService) Create(ctx context.Context, req CreateServiceStatusRequest) (*ServiceStatusResponse, error) {
	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Service status with this code already exists")
	}

	status, err := catalog.NewServiceStatus(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	status.CreatedBy = req.CreatedBy

	if err := s.repo.Save(ctx, status); err != nil {
		return nil, err
	}

	s.logger.Info("Service status created", zap.String("codigo", status.Code))
	return ToServiceStatusResponse(status), nil
}

// GetByID retrieves a service status
func (s *ServiceStatusService) GetByID(ctx context.Context, id uuid.UUID) (*ServiceStatusResponse, error) {
	status, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToServiceStatusResponse(status), nil
}

// List retrieves service statuses
func (s *ServiceStatusService) List(ctx context.Context, onlyActive bool) ([]*ServiceStatusResponse, error) {
	items, err := s.repo.FindAll(ctx, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]*ServiceStatusResponse, len(items))
	for i, status := range items {
		responses[i] = ToServiceStatusResponse(status)
	}
	return responses, nil
}

// Update updates a service status
func (s *ServiceStatusService) Update(ctx context.Context, id uuid.UUID, req UpdateServiceStatusRequest) (*ServiceStatusResponse, error) {
	status, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := status.Update(req.Name); err != nil {
		return nil, err
	}
	status.UpdatedBy = req.UpdatedBy

	if err := s.repo.Save(ctx, status); err != nil {
		return nil, err
	}
	return ToServiceStatusResponse(status), nil
}

// Delete soft-deletes a service status
func (s *ServiceStatusService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, deletedBy)
}
