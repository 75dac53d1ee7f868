package catalog

import (
	"context"
	"testing"

	"github.com/carbyfah/backend/internal/domain/catalog"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockGradeRepository is a mock implementation of catalog.GradeRepository
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

func TestGradeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a grade", func(t *testing.T) {
		repo := new(MockGradeRepository)
		svc := NewGradeService(repo, zap.NewNop())

		repo.On("ExistsByCode", ctx, "CAP").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Grade")).Return(nil)

		resp, err := svc.Create(ctx, CreateGradeRequest{
			Code: "CAP", Name: "Capitán", Abbreviation: "Cap.", Order: 7,
		})
		require.NoError(t, err)

		assert.Equal(t, "CAP", resp.Code)
		assert.Equal(t, 7, resp.Order)
		assert.True(t, resp.Active)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		repo := new(MockGradeRepository)
		svc := NewGradeService(repo, zap.NewNop())

		repo.On("ExistsByCode", ctx, "CAP").Return(true, nil)

		_, err := svc.Create(ctx, CreateGradeRequest{
			Code: "CAP", Name: "Capitán", Abbreviation: "Cap.", Order: 7,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("invalid grade not saved", func(t *testing.T) {
		repo := new(MockGradeRepository)
		svc := NewGradeService(repo, zap.NewNop())

		repo.On("ExistsByCode", ctx, "").Return(false, nil)

		_, err := svc.Create(ctx, CreateGradeRequest{Code: "", Name: "Capitán", Abbreviation: "Cap."})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestGradeService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGradeRepository)
	svc := NewGradeService(repo, zap.NewNop())

	g, err := catalog.NewGrade("CAP", "Capitán", "Cap.", 7)
	require.NoError(t, err)

	repo.On("FindByID", ctx, g.ID).Return(g, nil)
	repo.On("Save", ctx, g).Return(nil)

	resp, err := svc.Update(ctx, g.ID, UpdateGradeRequest{
		Name: "Capitán de Aviación", Abbreviation: "Cap.", Order: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, "Capitán de Aviación", resp.Name)
	assert.Equal(t, 6, resp.Order)
	assert.Equal(t, 2, resp.Version)
}

func TestGradeService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGradeRepository)
	svc := NewGradeService(repo, zap.NewNop())

	coronel, err := catalog.NewGrade("COR", "Coronel", "Cnel.", 3)
	require.NoError(t, err)
	capitan, err := catalog.NewGrade("CAP", "Capitán", "Cap.", 7)
	require.NoError(t, err)

	repo.On("FindAll", ctx, true).Return([]*catalog.Grade{coronel, capitan}, nil)

	resp, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "COR", resp[0].Code)
}
