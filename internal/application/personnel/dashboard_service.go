package personnel

import (
	"context"
	"time"

	"github.com/carbyfah/backend/internal/domain/personnel"
	"go.uber.org/zap"
)

// DashboardService aggregates the summary counters shown on the
// landing screen.
type DashboardService struct {
	profileRepo    personnel.ProfileRepository
	assignmentRepo personnel.AssignmentRepository
	grantRepo      personnel.RoleAssignmentRepository
	alerts         *AlertService
	logger         *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	profileRepo personnel.ProfileRepository,
	assignmentRepo personnel.AssignmentRepository,
	grantRepo personnel.RoleAssignmentRepository,
	alerts *AlertService,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		profileRepo:    profileRepo,
		assignmentRepo: assignmentRepo,
		grantRepo:      grantRepo,
		alerts:         alerts,
		logger:         logger,
	}
}

// GetSummary computes the dashboard counters
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardResponse, error) {
	now := time.Now()

	activeProfiles, err := s.profileRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	vigenteAssignments, err := s.assignmentRepo.CountVigentes(ctx, now)
	if err != nil {
		return nil, err
	}
	vigenteRoles, err := s.grantRepo.CountVigentes(ctx, now)
	if err != nil {
		return nil, err
	}
	pendingAlerts, err := s.alerts.CountExpiring(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		ActiveProfiles:     activeProfiles,
		VigenteAssignments: vigenteAssignments,
		VigenteRoles:       vigenteRoles,
		PendingAlerts:      pendingAlerts,
	}, nil
}
