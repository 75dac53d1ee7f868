package personnel

import (
	"context"
	"errors"
	"time"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrganigramInvalidator drops the cached organigram after a mutation
// that changes what the tree shows.
type OrganigramInvalidator interface {
	Invalidate(ctx context.Context) error
}

// AssignmentService handles the assignment lifecycle. Every successful
// assignment also writes the career history: the open entry of the
// profile is closed the day before the new start, and a new open entry
// records the position being taken.
type AssignmentService struct {
	assignmentRepo  personnel.AssignmentRepository
	profileRepo     personnel.ProfileRepository
	careerRepo      personnel.CareerHistoryRepository
	unitRepo        organization.UnitRepository
	positionRepo    organization.PositionRepository
	cache           OrganigramInvalidator
	alertWindowDays int
	logger          *zap.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo personnel.AssignmentRepository,
	profileRepo personnel.ProfileRepository,
	careerRepo personnel.CareerHistoryRepository,
	unitRepo organization.UnitRepository,
	positionRepo organization.PositionRepository,
	cache OrganigramInvalidator,
	alertWindowDays int,
	logger *zap.Logger,
) *AssignmentService {
	if alertWindowDays <= 0 {
		alertWindowDays = personnel.DefaultAlertWindowDays
	}
	return &AssignmentService{
		assignmentRepo:  assignmentRepo,
		profileRepo:     profileRepo,
		careerRepo:      careerRepo,
		unitRepo:        unitRepo,
		positionRepo:    positionRepo,
		cache:           cache,
		alertWindowDays: alertWindowDays,
		logger:          logger,
	}
}

// Assign places a profile in a unit and position. The proposed period
// must not overlap any other active assignment of the profile.
func (s *AssignmentService) Assign(ctx context.Context, req AssignRequest) (*AssignmentResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if !profile.Active {
		return nil, shared.NewDomainError("PROFILE_INACTIVE", "Cannot assign an inactive profile")
	}

	unit, err := s.unitRepo.FindByID(ctx, req.UnitID)
	if err != nil {
		return nil, s.asReferenceError(err)
	}
	if !unit.IsOperational(time.Now()) {
		return nil, shared.NewDomainError("UNIT_NOT_OPERATIONAL", "Cannot assign to a non-operational unit")
	}

	position, err := s.positionRepo.FindByID(ctx, req.PositionID)
	if err != nil {
		return nil, s.asReferenceError(err)
	}
	if position.UnitID != unit.ID {
		return nil, shared.NewDomainError("POSITION_UNIT_MISMATCH", "Position does not belong to the unit")
	}

	candidate, err := shared.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.assignmentRepo.FindActiveByProfile(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if personnel.HasDateConflict(existing, candidate, uuid.Nil) {
		return nil, personnel.ErrAssignmentConflict
	}

	assignment, err := personnel.NewCurrentAssignment(req.ProfileID, req.UnitID, req.PositionID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	assignment.CreatedBy = req.CreatedBy

	if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}

	if err := s.recordCareerEntry(ctx, assignment, position, req.CreatedBy); err != nil {
		s.logger.Error("Failed to record career history", zap.Error(err),
			zap.String("perfil_id", req.ProfileID.String()))
	}

	s.invalidateOrganigram(ctx)
	s.logger.Info("Assignment created",
		zap.String("perfil_id", req.ProfileID.String()),
		zap.String("unidad_id", req.UnitID.String()),
		zap.String("cargo_id", req.PositionID.String()))

	return ToAssignmentResponse(assignment, time.Now(), s.alertWindowDays), nil
}

// GetByID retrieves an assignment with its derived state
func (s *AssignmentService) GetByID(ctx context.Context, id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAssignmentResponse(assignment, time.Now(), s.alertWindowDays), nil
}

// ListByProfile retrieves the active assignments of a profile
func (s *AssignmentService) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.FindActiveByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(assignments), nil
}

// ListByUnit retrieves the assignments of a unit
func (s *AssignmentService) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.FindByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(assignments), nil
}

// Finalize closes an assignment at the given date and closes the
// matching open career entry.
func (s *AssignmentService) Finalize(ctx context.Context, id uuid.UUID, req FinalizeRequest) (*AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := assignment.Finalize(req.EndDate); err != nil {
		return nil, err
	}
	assignment.UpdatedBy = req.UpdatedBy

	if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}

	if err := s.closeOpenCareerEntry(ctx, assignment.ProfileID, req.EndDate, req.UpdatedBy); err != nil {
		s.logger.Error("Failed to close career entry", zap.Error(err),
			zap.String("perfil_id", assignment.ProfileID.String()))
	}

	s.invalidateOrganigram(ctx)
	return ToAssignmentResponse(assignment, time.Now(), s.alertWindowDays), nil
}

// Extend pushes the end date of a vigente assignment further out. The
// new end must not overlap another active assignment of the profile.
func (s *AssignmentService) Extend(ctx context.Context, id uuid.UUID, req ExtendRequest) (*AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newEnd := req.NewEnd
	candidate := shared.DateRange{Start: assignment.StartDate, End: &newEnd}
	existing, err := s.assignmentRepo.FindActiveByProfile(ctx, assignment.ProfileID)
	if err != nil {
		return nil, err
	}
	if personnel.HasDateConflict(existing, candidate, assignment.ID) {
		return nil, personnel.ErrAssignmentConflict
	}

	if err := assignment.Extend(req.NewEnd, time.Now()); err != nil {
		return nil, err
	}
	assignment.UpdatedBy = req.UpdatedBy

	if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}
	return ToAssignmentResponse(assignment, time.Now(), s.alertWindowDays), nil
}

// Delete soft-deletes an assignment
func (s *AssignmentService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.assignmentRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.assignmentRepo.Delete(ctx, id, deletedBy); err != nil {
		return err
	}
	s.invalidateOrganigram(ctx)
	return nil
}

func (s *AssignmentService) recordCareerEntry(ctx context.Context, a *personnel.CurrentAssignment, position *organization.Position, by *uuid.UUID) error {
	if err := s.closeOpenCareerEntry(ctx, a.ProfileID, a.StartDate.AddDate(0, 0, -1), by); err != nil {
		return err
	}

	entry, err := personnel.NewCareerHistoryEntry(
		a.ProfileID, a.UnitID, a.PositionID,
		position.Name, position.Level,
		a.StartDate, nil,
	)
	if err != nil {
		return err
	}
	entry.CreatedBy = by

	return s.careerRepo.Save(ctx, entry)
}

func (s *AssignmentService) closeOpenCareerEntry(ctx context.Context, profileID uuid.UUID, endDate time.Time, by *uuid.UUID) error {
	open, err := s.careerRepo.FindOpenByProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := open.Close(endDate); err != nil {
		return err
	}
	open.UpdatedBy = by
	return s.careerRepo.Save(ctx, open)
}

func (s *AssignmentService) toResponses(assignments []*personnel.CurrentAssignment) []*AssignmentResponse {
	now := time.Now()
	responses := make([]*AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = ToAssignmentResponse(a, now, s.alertWindowDays)
	}
	return responses
}

func (s *AssignmentService) asReferenceError(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.ErrReferenceNotFound
	}
	return err
}

func (s *AssignmentService) invalidateOrganigram(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate organigram cache", zap.Error(err))
	}
}
