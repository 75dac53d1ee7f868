package personnel

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoleService handles the role-grant lifecycle
type RoleService struct {
	grantRepo       personnel.RoleAssignmentRepository
	profileRepo     personnel.ProfileRepository
	roleRepo        organization.FunctionalRoleRepository
	alertWindowDays int
	logger          *zap.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(
	grantRepo personnel.RoleAssignmentRepository,
	profileRepo personnel.ProfileRepository,
	roleRepo organization.FunctionalRoleRepository,
	alertWindowDays int,
	logger *zap.Logger,
) *RoleService {
	if alertWindowDays <= 0 {
		alertWindowDays = personnel.DefaultAlertWindowDays
	}
	return &RoleService{
		grantRepo:       grantRepo,
		profileRepo:     profileRepo,
		roleRepo:        roleRepo,
		alertWindowDays: alertWindowDays,
		logger:          logger,
	}
}

// Grant gives a functional role to a profile. The proposed period must
// not overlap another active grant of the same role to the same
// profile; grants of distinct roles may coexist.
func (s *RoleService) Grant(ctx context.Context, req GrantRoleRequest) (*RoleAssignmentResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if !profile.Active {
		return nil, shared.NewDomainError("PROFILE_INACTIVE", "Cannot grant a role to an inactive profile")
	}

	if _, err := s.roleRepo.FindByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrReferenceNotFound
		}
		return nil, err
	}

	candidate, err := shared.NewDateRange(req.StartDate, req.ExpiresAt)
	if err != nil {
		return nil, err
	}

	existing, err := s.grantRepo.FindActiveByProfile(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if personnel.HasRoleConflict(existing, req.RoleID, candidate, uuid.Nil) {
		return nil, personnel.ErrAssignmentConflict
	}

	grant, err := personnel.NewRoleAssignment(req.ProfileID, req.RoleID, req.StartDate, req.ExpiresAt)
	if err != nil {
		return nil, err
	}
	grant.CreatedBy = req.CreatedBy

	if err := s.grantRepo.Save(ctx, grant); err != nil {
		return nil, err
	}

	s.logger.Info("Role granted",
		zap.String("perfil_id", req.ProfileID.String()),
		zap.String("rol_id", req.RoleID.String()))

	return ToRoleAssignmentResponse(grant, time.Now(), s.alertWindowDays), nil
}

// GetByID retrieves a role grant with its derived state
func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*RoleAssignmentResponse, error) {
	grant, err := s.grantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRoleAssignmentResponse(grant, time.Now(), s.alertWindowDays), nil
}

// ListByProfile retrieves all grants of a profile, revoked ones included
func (s *RoleService) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*RoleAssignmentResponse, error) {
	grants, err := s.grantRepo.FindByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]*RoleAssignmentResponse, len(grants))
	for i, g := range grants {
		responses[i] = ToRoleAssignmentResponse(g, now, s.alertWindowDays)
	}
	return responses, nil
}

// Revoke ends a grant at the given date
func (s *RoleService) Revoke(ctx context.Context, id uuid.UUID, req RevokeRequest) (*RoleAssignmentResponse, error) {
	grant, err := s.grantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := grant.Revoke(req.At); err != nil {
		return nil, err
	}
	grant.UpdatedBy = req.UpdatedBy

	if err := s.grantRepo.Save(ctx, grant); err != nil {
		return nil, err
	}

	s.logger.Info("Role revoked", zap.String("id", grant.ID.String()))
	return ToRoleAssignmentResponse(grant, time.Now(), s.alertWindowDays), nil
}

// Renew extends a grant by months from its current expiration
func (s *RoleService) Renew(ctx context.Context, id uuid.UUID, req RenewRequest) (*RoleAssignmentResponse, error) {
	grant, err := s.grantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := grant.Renew(req.Months, time.Now()); err != nil {
		return nil, err
	}
	grant.UpdatedBy = req.UpdatedBy

	if err := s.grantRepo.Save(ctx, grant); err != nil {
		return nil, err
	}
	return ToRoleAssignmentResponse(grant, time.Now(), s.alertWindowDays), nil
}

// MakePermanent clears the expiration of a grant
func (s *RoleService) MakePermanent(ctx context.Context, id uuid.UUID, updatedBy *uuid.UUID) (*RoleAssignmentResponse, error) {
	grant, err := s.grantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	grant.MakePermanent()
	grant.UpdatedBy = updatedBy

	if err := s.grantRepo.Save(ctx, grant); err != nil {
		return nil, err
	}
	return ToRoleAssignmentResponse(grant, time.Now(), s.alertWindowDays), nil
}

// Extend pushes the expiration of a vigente grant further out. The
// extended period must not overlap another active grant of the same
// role to the same profile.
func (s *RoleService) Extend(ctx context.Context, id uuid.UUID, req ExtendRequest) (*RoleAssignmentResponse, error) {
	grant, err := s.grantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newEnd := req.NewEnd
	candidate := shared.DateRange{Start: grant.StartDate, End: &newEnd}
	existing, err := s.grantRepo.FindActiveByProfile(ctx, grant.ProfileID)
	if err != nil {
		return nil, err
	}
	if personnel.HasRoleConflict(existing, grant.RoleID, candidate, grant.ID) {
		return nil, personnel.ErrAssignmentConflict
	}

	if err := grant.Extend(req.NewEnd, time.Now()); err != nil {
		return nil, err
	}
	grant.UpdatedBy = req.UpdatedBy

	if err := s.grantRepo.Save(ctx, grant); err != nil {
		return nil, err
	}
	return ToRoleAssignmentResponse(grant, time.Now(), s.alertWindowDays), nil
}

// ListExpiring returns vigente grants expiring within the alert window,
// most urgent first.
func (s *RoleService) ListExpiring(ctx context.Context) ([]personnel.ExpiryAlert, error) {
	now := time.Now()

	grants, err := s.grantRepo.FindExpiringWithin(ctx, now, s.alertWindowDays)
	if err != nil {
		return nil, err
	}

	alerts := personnel.CollectRoleAlerts(grants, now, s.alertWindowDays)
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysRemaining < alerts[j].DaysRemaining
	})
	return alerts, nil
}

// Delete soft-deletes a grant
func (s *RoleService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	if _, err := s.grantRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.grantRepo.Delete(ctx, id, deletedBy)
}
