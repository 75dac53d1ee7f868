package personnel

import (
	"context"
	"sort"
	"time"

	"github.com/carbyfah/backend/internal/domain/personnel"
	"go.uber.org/zap"
)

// AlertService produces the soon-to-expire listing across assignments
// and role grants.
type AlertService struct {
	assignmentRepo personnel.AssignmentRepository
	grantRepo      personnel.RoleAssignmentRepository
	windowDays     int
	logger         *zap.Logger
}

// NewAlertService creates a new AlertService
func NewAlertService(
	assignmentRepo personnel.AssignmentRepository,
	grantRepo personnel.RoleAssignmentRepository,
	windowDays int,
	logger *zap.Logger,
) *AlertService {
	if windowDays <= 0 {
		windowDays = personnel.DefaultAlertWindowDays
	}
	return &AlertService{
		assignmentRepo: assignmentRepo,
		grantRepo:      grantRepo,
		windowDays:     windowDays,
		logger:         logger,
	}
}

// WindowDays returns the configured look-ahead window
func (s *AlertService) WindowDays() int {
	return s.windowDays
}

// ListExpiring returns every vigente record expiring within the window,
// most urgent first.
func (s *AlertService) ListExpiring(ctx context.Context) ([]personnel.ExpiryAlert, error) {
	now := time.Now()

	assignments, err := s.assignmentRepo.FindExpiringWithin(ctx, now, s.windowDays)
	if err != nil {
		return nil, err
	}
	grants, err := s.grantRepo.FindExpiringWithin(ctx, now, s.windowDays)
	if err != nil {
		return nil, err
	}

	alerts := personnel.CollectAssignmentAlerts(assignments, now, s.windowDays)
	alerts = append(alerts, personnel.CollectRoleAlerts(grants, now, s.windowDays)...)

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysRemaining < alerts[j].DaysRemaining
	})

	return alerts, nil
}

// CountExpiring returns how many records sit inside the alert window
func (s *AlertService) CountExpiring(ctx context.Context) (int, error) {
	alerts, err := s.ListExpiring(ctx)
	if err != nil {
		return 0, err
	}
	return len(alerts), nil
}
