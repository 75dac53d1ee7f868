package personnel

import (
	"context"
	"errors"
	"testing"

	"github.com/carbyfah/backend/internal/domain/catalog"
	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockGradeRepository mocks catalog.GradeRepository
type MockGradeRepository struct {
	mock.Mock
}

func (m *MockGradeRepository) Save(ctx context.Context, g *catalog.Grade) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGradeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Grade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Grade), args.Error(1)
}

func (m *MockGradeRepository) FindByCode(ctx context.Context, code string) (*catalog.Grade, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Grade), args.Error(1)
}

func (m *MockGradeRepository) FindAll(ctx context.Context, onlyActive bool) ([]*catalog.Grade, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Grade), args.Error(1)
}

func (m *MockGradeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockGradeRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

// MockServiceStatusRepository mocks catalog.ServiceStatusRepository
type MockServiceStatusRepository struct {
	mock.Mock
}

func (m *MockServiceStatusRepository) Save(ctx context.Context, s *catalog.ServiceStatus) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ServiceStatus), args.Error(1)
}

func (m *MockServiceStatusRepository) FindAll(ctx context.Context, onlyActive bool) ([]*catalog.ServiceStatus, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.ServiceStatus), args.Error(1)
}

func (m *MockServiceStatusRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceStatusRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

type profileFixture struct {
	service     *ProfileService
	profileRepo *MockProfileRepository
	gradeRepo   *MockGradeRepository
	statusRepo  *MockServiceStatusRepository

	grade  *catalog.Grade
	status *catalog.ServiceStatus
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	f := &profileFixture{
		profileRepo: new(MockProfileRepository),
		gradeRepo:   new(MockGradeRepository),
		statusRepo:  new(MockServiceStatusRepository),
	}
	f.service = NewProfileService(f.profileRepo, f.gradeRepo, f.statusRepo, zap.NewNop())

	var err error
	f.grade, err = catalog.NewGrade("CAP", "Capitán", "Cap.", 6)
	require.NoError(t, err)
	f.status, err = catalog.NewServiceStatus("ACTIVO", "Servicio Activo")
	require.NoError(t, err)

	return f
}

func TestProfileService_Create(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	f.profileRepo.On("ExistsByServiceNumber", ctx, "FAH-1001").Return(false, nil)
	f.gradeRepo.On("FindByID", ctx, f.grade.ID).Return(f.grade, nil)
	f.statusRepo.On("FindByID", ctx, f.status.ID).Return(f.status, nil)
	f.profileRepo.On("Save", ctx, mock.AnythingOfType("*personnel.MilitaryProfile")).Return(nil)

	resp, err := f.service.Create(ctx, CreateProfileRequest{
		ServiceNumber:   "FAH-1001",
		FirstName:       "José",
		LastName:        "Pérez",
		DocumentID:      "0801-1990-12345",
		GradeID:         f.grade.ID,
		ServiceStatusID: f.status.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "FAH-1001", resp.ServiceNumber)
	assert.Equal(t, "José Pérez", resp.FullName)
	assert.True(t, resp.Active)
}

func TestProfileService_Create_DuplicateServiceNumber(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	f.profileRepo.On("ExistsByServiceNumber", ctx, "FAH-1001").Return(true, nil)

	_, err := f.service.Create(ctx, CreateProfileRequest{
		ServiceNumber:   "FAH-1001",
		FirstName:       "José",
		LastName:        "Pérez",
		GradeID:         f.grade.ID,
		ServiceStatusID: f.status.ID,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	f.profileRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileService_Create_UnknownGradeRejected(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	unknownGrade := uuid.New()
	f.profileRepo.On("ExistsByServiceNumber", ctx, "FAH-1002").Return(false, nil)
	f.gradeRepo.On("FindByID", ctx, unknownGrade).Return(nil, shared.ErrNotFound)

	_, err := f.service.Create(ctx, CreateProfileRequest{
		ServiceNumber:   "FAH-1002",
		FirstName:       "Ana",
		LastName:        "López",
		GradeID:         unknownGrade,
		ServiceStatusID: f.status.ID,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "REFERENCE_NOT_FOUND", domainErr.Code)
}

func TestProfileService_List_FoldsSearchTerm(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	profile, err := personnel.NewMilitaryProfile("FAH-1003", "María", "Pérez", "0805", f.grade.ID, f.status.ID)
	require.NoError(t, err)

	f.profileRepo.On("FindAll", ctx, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Search == "perez"
	})).Return([]*personnel.MilitaryProfile{profile}, nil)
	f.profileRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	result, err := f.service.List(ctx, ProfileListFilter{Search: "Pérez"})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Total)
}

func TestProfileService_ChangeGrade(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	profile, err := personnel.NewMilitaryProfile("FAH-1004", "Pedro", "Gómez", "0806", f.grade.ID, f.status.ID)
	require.NoError(t, err)
	newGrade, err := catalog.NewGrade("MAY", "Mayor", "My.", 7)
	require.NoError(t, err)

	f.profileRepo.On("FindByID", ctx, profile.ID).Return(profile, nil)
	f.gradeRepo.On("FindByID", ctx, newGrade.ID).Return(newGrade, nil)
	f.profileRepo.On("Save", ctx, profile).Return(nil)

	resp, err := f.service.ChangeGrade(ctx, profile.ID, ChangeGradeRequest{GradeID: newGrade.ID})

	require.NoError(t, err)
	assert.Equal(t, newGrade.ID, resp.GradeID)
	assert.Equal(t, 2, resp.Version)
}
