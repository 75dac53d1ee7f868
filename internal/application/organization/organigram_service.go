package organization

import (
	"context"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrganigramCache caches the reconstructed organigram tree. The tree
// only changes when units, assignments or profiles change, so reads are
// served from cache between mutations.
type OrganigramCache interface {
	Get(ctx context.Context) ([]*organization.OrganigramNode, bool, error)
	Set(ctx context.Context, tree []*organization.OrganigramNode) error
	Invalidate(ctx context.Context) error
}

// OrganigramPrinter renders an organigram tree to a PDF document
type OrganigramPrinter interface {
	RenderPDF(ctx context.Context, tree []*organization.OrganigramNode) ([]byte, error)
}

// OrganigramService builds organigram views
type OrganigramService struct {
	reader  organization.OrganigramReader
	cache   OrganigramCache
	printer OrganigramPrinter
	logger  *zap.Logger
}

// NewOrganigramService creates a new OrganigramService
func NewOrganigramService(
	reader organization.OrganigramReader,
	cache OrganigramCache,
	printer OrganigramPrinter,
	logger *zap.Logger,
) *OrganigramService {
	return &OrganigramService{
		reader:  reader,
		cache:   cache,
		printer: printer,
		logger:  logger,
	}
}

// GetTree returns the full organigram as a tree of operational units
// with their assigned personnel.
func (s *OrganigramService) GetTree(ctx context.Context) ([]*organization.OrganigramNode, error) {
	if s.cache != nil {
		tree, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("Organigram cache read failed", zap.Error(err))
		} else if hit {
			return tree, nil
		}
	}

	rows, err := s.reader.BuildOrganigram(ctx)
	if err != nil {
		return nil, err
	}

	tree := organization.BuildTree(rows)

	if s.cache != nil {
		if err := s.cache.Set(ctx, tree); err != nil {
			s.logger.Warn("Organigram cache write failed", zap.Error(err))
		}
	}

	return tree, nil
}

// GetUnit returns the organigram row of a single unit with command
// posts flagged.
func (s *OrganigramService) GetUnit(ctx context.Context, unitID uuid.UUID) (*organization.OrganigramRow, error) {
	return s.reader.BuildUnitOrganigram(ctx, unitID)
}

// ExportPDF renders the full organigram to a PDF document
func (s *OrganigramService) ExportPDF(ctx context.Context) ([]byte, error) {
	tree, err := s.GetTree(ctx)
	if err != nil {
		return nil, err
	}
	return s.printer.RenderPDF(ctx, tree)
}
