package personnel

import (
	"context"
	"testing"
	"time"

	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAlertService_ListExpiring_MergedAndSorted(t *testing.T) {
	assignmentRepo := new(MockAssignmentRepository)
	grantRepo := new(MockRoleAssignmentRepository)
	service := NewAlertService(assignmentRepo, grantRepo, 30, zap.NewNop())
	ctx := context.Background()

	profileID := uuid.New()
	start := time.Now().AddDate(0, -6, 0)

	assignmentEnd := time.Now().AddDate(0, 0, 20)
	assignment, err := personnel.NewCurrentAssignment(profileID, uuid.New(), uuid.New(), start, &assignmentEnd)
	require.NoError(t, err)

	grantEnd := time.Now().AddDate(0, 0, 5)
	grant, err := personnel.NewRoleAssignment(profileID, uuid.New(), start, &grantEnd)
	require.NoError(t, err)

	assignmentRepo.On("FindExpiringWithin", ctx, mock.AnythingOfType("time.Time"), 30).
		Return([]*personnel.CurrentAssignment{assignment}, nil)
	grantRepo.On("FindExpiringWithin", ctx, mock.AnythingOfType("time.Time"), 30).
		Return([]*personnel.RoleAssignment{grant}, nil)

	alerts, err := service.ListExpiring(ctx)

	require.NoError(t, err)
	require.Len(t, alerts, 2)

	// The role grant expires first, so it leads the listing as CRITICA.
	assert.Equal(t, personnel.AlertKindRole, alerts[0].Kind)
	assert.Equal(t, personnel.SeverityCritica, alerts[0].Severity)
	assert.Equal(t, personnel.AlertKindAssignment, alerts[1].Kind)
	assert.Equal(t, personnel.SeverityAdvertencia, alerts[1].Severity)
	assert.LessOrEqual(t, alerts[0].DaysRemaining, alerts[1].DaysRemaining)
}

func TestAlertService_ListExpiring_Empty(t *testing.T) {
	assignmentRepo := new(MockAssignmentRepository)
	grantRepo := new(MockRoleAssignmentRepository)
	service := NewAlertService(assignmentRepo, grantRepo, 30, zap.NewNop())
	ctx := context.Background()

	assignmentRepo.On("FindExpiringWithin", ctx, mock.AnythingOfType("time.Time"), 30).
		Return([]*personnel.CurrentAssignment{}, nil)
	grantRepo.On("FindExpiringWithin", ctx, mock.AnythingOfType("time.Time"), 30).
		Return([]*personnel.RoleAssignment{}, nil)

	alerts, err := service.ListExpiring(ctx)

	require.NoError(t, err)
	assert.Empty(t, alerts)

	count, err := service.CountExpiring(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAlertService_DefaultWindow(t *testing.T) {
	service := NewAlertService(new(MockAssignmentRepository), new(MockRoleAssignmentRepository), 0, zap.NewNop())
	assert.Equal(t, personnel.DefaultAlertWindowDays, service.WindowDays())
}
