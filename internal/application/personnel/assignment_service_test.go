package personnel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProfileRepository mocks personnel.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *personnel.MilitaryProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*personnel.MilitaryProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*personnel.MilitaryProfile), args.Error(1)
}

func (m *MockProfileRepository) FindByServiceNumber(ctx context.Context, serviceNumber string) (*personnel.MilitaryProfile, error) {
	args := m.Called(ctx, serviceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*personnel.MilitaryProfile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*personnel.MilitaryProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*personnel.MilitaryProfile), args.Error(1)
}

func (m *MockProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) ExistsByServiceNumber(ctx context.Context, serviceNumber string) (bool, error) {
	args := m.Called(ctx, serviceNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

// MockAssignmentRepository mocks personnel.AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Save(ctx context.Context, assignment *personnel.CurrentAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*personnel.CurrentAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*personnel.CurrentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindActiveByProfile(ctx context.Context, profileID uuid.UUID) ([]*personnel.CurrentAssignment, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*personnel.CurrentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*personnel.CurrentAssignment, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*personnel.CurrentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindExpiringWithin(ctx context.Context, now time.Time, days int) ([]*personnel.CurrentAssignment, error) {
	args := m.Called(ctx, now, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*personnel.CurrentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) CountVigentes(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

// MockCareerHistoryRepository mocks personnel.CareerHistoryRepository
type MockCareerHistoryRepository struct {
	mock.Mock
}

func (m *MockCareerHistoryRepository) Save(ctx context.Context, entry *personnel.CareerHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCareerHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*personnel.CareerHistoryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*personnel.CareerHistoryEntry), args.Error(1)
}

func (m *MockCareerHistoryRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*personnel.CareerHistoryEntry, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*personnel.CareerHistoryEntry), args.Error(1)
}

func (m *MockCareerHistoryRepository) FindOpenByProfile(ctx context.Context, profileID uuid.UUID) (*personnel.CareerHistoryEntry, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*personnel.CareerHistoryEntry), args.Error(1)
}

// MockUnitRepository mocks organization.UnitRepository
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) Save(ctx context.Context, unit *organization.OrganizationalUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.OrganizationalUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.OrganizationalUnit), args.Error(1)
}

func (m *MockUnitRepository) FindByCode(ctx context.Context, code string) (*organization.OrganizationalUnit, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.OrganizationalUnit), args.Error(1)
}

func (m *MockUnitRepository) FindOperational(ctx context.Context, now time.Time) ([]*organization.OrganizationalUnit, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.OrganizationalUnit), args.Error(1)
}

func (m *MockUnitRepository) FindAll(ctx context.Context) ([]*organization.OrganizationalUnit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.OrganizationalUnit), args.Error(1)
}

func (m *MockUnitRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*organization.OrganizationalUnit, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.OrganizationalUnit), args.Error(1)
}

func (m *MockUnitRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

// MockPositionRepository mocks organization.PositionRepository
type MockPositionRepository struct {
	mock.Mock
}

func (m *MockPositionRepository) Save(ctx context.Context, position *organization.Position) error {
	args := m.Called(ctx, position)
	return args.Error(0)
}

func (m *MockPositionRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Position), args.Error(1)
}

func (m *MockPositionRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*organization.Position, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Position), args.Error(1)
}

func (m *MockPositionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*organization.Position, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Position), args.Error(1)
}

func (m *MockPositionRepository) ExistsByCode(ctx context.Context, unitID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, unitID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockPositionRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

type assignmentFixture struct {
	service        *AssignmentService
	assignmentRepo *MockAssignmentRepository
	profileRepo    *MockProfileRepository
	careerRepo     *MockCareerHistoryRepository
	unitRepo       *MockUnitRepository
	positionRepo   *MockPositionRepository

	profile  *personnel.MilitaryProfile
	unit     *organization.OrganizationalUnit
	position *organization.Position
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	t.Helper()

	f := &assignmentFixture{
		assignmentRepo: new(MockAssignmentRepository),
		profileRepo:    new(MockProfileRepository),
		careerRepo:     new(MockCareerHistoryRepository),
		unitRepo:       new(MockUnitRepository),
		positionRepo:   new(MockPositionRepository),
	}
	f.service = NewAssignmentService(
		f.assignmentRepo, f.profileRepo, f.careerRepo,
		f.unitRepo, f.positionRepo, nil,
		personnel.DefaultAlertWindowDays, zap.NewNop(),
	)

	var err error
	f.profile, err = personnel.NewMilitaryProfile("FAH-0001", "Carlos", "Mejía", "0801", uuid.New(), uuid.New())
	require.NoError(t, err)
	f.unit, err = organization.NewOrganizationalUnit("BASE", "Base Aérea", uuid.New())
	require.NoError(t, err)
	f.position, err = organization.NewPosition(f.unit.ID, "CMDTE", "Comandante de Base", 2)
	require.NoError(t, err)

	return f
}

func (f *assignmentFixture) expectLookups(ctx context.Context) {
	f.profileRepo.On("FindByID", ctx, f.profile.ID).Return(f.profile, nil)
	f.unitRepo.On("FindByID", ctx, f.unit.ID).Return(f.unit, nil)
	f.positionRepo.On("FindByID", ctx, f.position.ID).Return(f.position, nil)
}

func TestAssignmentService_Assign(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	f.expectLookups(ctx)
	f.assignmentRepo.On("FindActiveByProfile", ctx, f.profile.ID).Return([]*personnel.CurrentAssignment{}, nil)
	f.assignmentRepo.On("Save", ctx, mock.AnythingOfType("*personnel.CurrentAssignment")).Return(nil)
	f.careerRepo.On("FindOpenByProfile", ctx, f.profile.ID).Return(nil, shared.ErrNotFound)
	f.careerRepo.On("Save", ctx, mock.AnythingOfType("*personnel.CareerHistoryEntry")).Return(nil)

	resp, err := f.service.Assign(ctx, AssignRequest{
		ProfileID:  f.profile.ID,
		UnitID:     f.unit.ID,
		PositionID: f.position.ID,
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, personnel.StatePermanente, resp.Status.State)
	f.careerRepo.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(e *personnel.CareerHistoryEntry) bool {
		return e.PositionName == "Comandante de Base" && e.EndDate == nil
	}))
}

func TestAssignmentService_Assign_OverlapRejected(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	existing, err := personnel.NewCurrentAssignment(
		f.profile.ID, f.unit.ID, f.position.ID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil,
	)
	require.NoError(t, err)

	f.expectLookups(ctx)
	f.assignmentRepo.On("FindActiveByProfile", ctx, f.profile.ID).Return([]*personnel.CurrentAssignment{existing}, nil)

	_, err = f.service.Assign(ctx, AssignRequest{
		ProfileID:  f.profile.ID,
		UnitID:     f.unit.ID,
		PositionID: f.position.ID,
		StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ASSIGNMENT_CONFLICT", domainErr.Code)
	f.assignmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAssignmentService_Assign_InactiveProfileRejected(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	f.profile.Deactivate()
	f.profileRepo.On("FindByID", ctx, f.profile.ID).Return(f.profile, nil)

	_, err := f.service.Assign(ctx, AssignRequest{
		ProfileID:  f.profile.ID,
		UnitID:     f.unit.ID,
		PositionID: f.position.ID,
		StartDate:  time.Now(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "PROFILE_INACTIVE", domainErr.Code)
}

func TestAssignmentService_Assign_PositionFromOtherUnitRejected(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	other, err := organization.NewPosition(uuid.New(), "JEFE", "Jefe de Escuadrón", 3)
	require.NoError(t, err)

	f.profileRepo.On("FindByID", ctx, f.profile.ID).Return(f.profile, nil)
	f.unitRepo.On("FindByID", ctx, f.unit.ID).Return(f.unit, nil)
	f.positionRepo.On("FindByID", ctx, other.ID).Return(other, nil)

	_, err = f.service.Assign(ctx, AssignRequest{
		ProfileID:  f.profile.ID,
		UnitID:     f.unit.ID,
		PositionID: other.ID,
		StartDate:  time.Now(),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "POSITION_UNIT_MISMATCH", domainErr.Code)
}

func TestAssignmentService_Finalize_ClosesCareerEntry(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assignment, err := personnel.NewCurrentAssignment(f.profile.ID, f.unit.ID, f.position.ID, start, nil)
	require.NoError(t, err)

	open, err := personnel.NewCareerHistoryEntry(
		f.profile.ID, f.unit.ID, f.position.ID,
		f.position.Name, f.position.Level, start, nil,
	)
	require.NoError(t, err)

	f.assignmentRepo.On("FindByID", ctx, assignment.ID).Return(assignment, nil)
	f.assignmentRepo.On("Save", ctx, assignment).Return(nil)
	f.careerRepo.On("FindOpenByProfile", ctx, f.profile.ID).Return(open, nil)
	f.careerRepo.On("Save", ctx, open).Return(nil)

	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	resp, err := f.service.Finalize(ctx, assignment.ID, FinalizeRequest{EndDate: end})

	require.NoError(t, err)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, end, *resp.EndDate)
	require.NotNil(t, open.EndDate)
	assert.Equal(t, end, *open.EndDate)
}

func TestAssignmentService_Extend_ConflictWithOtherAssignment(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	start := time.Now().AddDate(0, -6, 0)
	currentEnd := time.Now().AddDate(0, 1, 0)
	assignment, err := personnel.NewCurrentAssignment(f.profile.ID, f.unit.ID, f.position.ID, start, &currentEnd)
	require.NoError(t, err)

	// Another active assignment begins right after the current end, so
	// extending past it overlaps.
	nextStart := currentEnd.AddDate(0, 0, 1)
	next, err := personnel.NewCurrentAssignment(f.profile.ID, f.unit.ID, f.position.ID, nextStart, nil)
	require.NoError(t, err)

	f.assignmentRepo.On("FindByID", ctx, assignment.ID).Return(assignment, nil)
	f.assignmentRepo.On("FindActiveByProfile", ctx, f.profile.ID).Return([]*personnel.CurrentAssignment{assignment, next}, nil)

	_, err = f.service.Extend(ctx, assignment.ID, ExtendRequest{NewEnd: currentEnd.AddDate(0, 2, 0)})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ASSIGNMENT_CONFLICT", domainErr.Code)
	f.assignmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
