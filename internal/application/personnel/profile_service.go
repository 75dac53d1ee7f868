package personnel

import (
	"context"
	"errors"

	"github.com/carbyfah/backend/internal/domain/catalog"
	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService handles military-profile operations
type ProfileService struct {
	profileRepo personnel.ProfileRepository
	gradeRepo   catalog.GradeRepository
	statusRepo  catalog.ServiceStatusRepository
	logger      *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profileRepo personnel.ProfileRepository,
	gradeRepo catalog.GradeRepository,
	statusRepo catalog.ServiceStatusRepository,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		gradeRepo:   gradeRepo,
		statusRepo:  statusRepo,
		logger:      logger,
	}
}

// Create registers a new profile. Grade and service-status references
// must resolve to existing catalog entries.
func (s *ProfileService) Create(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	exists, err := s.profileRepo.ExistsByServiceNumber(ctx, req.ServiceNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Profile with this service number already exists")
	}

	if err := s.checkGrade(ctx, req.GradeID); err != nil {
		return nil, err
	}
	if err := s.checkServiceStatus(ctx, req.ServiceStatusID); err != nil {
		return nil, err
	}

	profile, err := personnel.NewMilitaryProfile(
		req.ServiceNumber, req.FirstName, req.LastName, req.DocumentID,
		req.GradeID, req.ServiceStatusID,
	)
	if err != nil {
		return nil, err
	}
	profile.BirthDate = req.BirthDate
	profile.CreatedBy = req.CreatedBy

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Profile created",
		zap.String("numero_servicio", profile.ServiceNumber),
		zap.String("id", profile.ID.String()))

	return ToProfileResponse(profile), nil
}

// GetByID retrieves a profile
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// GetByServiceNumber retrieves a profile by its service number
func (s *ProfileService) GetByServiceNumber(ctx context.Context, serviceNumber string) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByServiceNumber(ctx, serviceNumber)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// List retrieves profiles with pagination. The search term is folded to
// its accent-free lowercase form so "Pérez" and "perez" match the same
// rows.
func (s *ProfileService) List(ctx context.Context, req ProfileListFilter) (*shared.Paginated[*ProfileResponse], error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "apellidos"
	filter.OrderDir = "asc"
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 && req.PageSize <= 100 {
		filter.PageSize = req.PageSize
	}
	filter.Search = shared.FoldAccents(req.Search)

	profiles, err := s.profileRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.profileRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProfileResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = ToProfileResponse(p)
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates the identity fields of a profile
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := profile.UpdateIdentity(req.FirstName, req.LastName, req.DocumentID, req.BirthDate); err != nil {
		return nil, err
	}
	profile.UpdatedBy = req.UpdatedBy

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// ChangeGrade records a grade change
func (s *ProfileService) ChangeGrade(ctx context.Context, id uuid.UUID, req ChangeGradeRequest) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkGrade(ctx, req.GradeID); err != nil {
		return nil, err
	}
	if err := profile.ChangeGrade(req.GradeID); err != nil {
		return nil, err
	}
	profile.UpdatedBy = req.UpdatedBy

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Profile grade changed",
		zap.String("numero_servicio", profile.ServiceNumber),
		zap.String("grado_id", req.GradeID.String()))

	return ToProfileResponse(profile), nil
}

// ChangeServiceStatus records a service-situation change
func (s *ProfileService) ChangeServiceStatus(ctx context.Context, id uuid.UUID, req ChangeServiceStatusRequest) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkServiceStatus(ctx, req.ServiceStatusID); err != nil {
		return nil, err
	}
	if err := profile.ChangeServiceStatus(req.ServiceStatusID); err != nil {
		return nil, err
	}
	profile.UpdatedBy = req.UpdatedBy

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// Deactivate retires a profile without deleting it
func (s *ProfileService) Deactivate(ctx context.Context, id uuid.UUID) error {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	profile.Deactivate()
	return s.profileRepo.Save(ctx, profile)
}

// Delete soft-deletes a profile
func (s *ProfileService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.profileRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.profileRepo.Delete(ctx, id, deletedBy)
}

func (s *ProfileService) checkGrade(ctx context.Context, gradeID uuid.UUID) error {
	if _, err := s.gradeRepo.FindByID(ctx, gradeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrReferenceNotFound
		}
		return err
	}
	return nil
}

func (s *ProfileService) checkServiceStatus(ctx context.Context, statusID uuid.UUID) error {
	if _, err := s.statusRepo.FindByID(ctx, statusID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrReferenceNotFound
		}
		return err
	}
	return nil
}
