package personnel

import (
	"context"
	"time"

	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CareerService reconstructs the career trajectory of a profile from
// its history entries.
type CareerService struct {
	careerRepo  personnel.CareerHistoryRepository
	profileRepo personnel.ProfileRepository
	logger      *zap.Logger
}

// NewCareerService creates a new CareerService
func NewCareerService(
	careerRepo personnel.CareerHistoryRepository,
	profileRepo personnel.ProfileRepository,
	logger *zap.Logger,
) *CareerService {
	return &CareerService{
		careerRepo:  careerRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetCareer returns the full history of a profile with the time spent
// in each position and the derived moves between them.
func (s *CareerService) GetCareer(ctx context.Context, profileID uuid.UUID) (*CareerResponse, error) {
	if _, err := s.profileRepo.FindByID(ctx, profileID); err != nil {
		return nil, err
	}

	entries, err := s.careerRepo.FindByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := &CareerResponse{
		ProfileID: profileID,
		Entries:   make([]CareerEntryResponse, len(entries)),
		Moves:     []CareerMoveResponse{},
	}
	for i, e := range entries {
		response.Entries[i] = CareerEntryResponse{
			ID:            e.ID,
			UnitID:        e.UnitID,
			PositionID:    e.PositionID,
			PositionName:  e.PositionName,
			PositionLevel: e.PositionLevel,
			StartDate:     e.StartDate,
			EndDate:       e.EndDate,
			Duration:      shared.ElapsedBetween(e.StartDate, e.EndDate, now).Format(),
		}
	}

	for _, move := range personnel.ReconstructCareer(entries) {
		response.Moves = append(response.Moves, CareerMoveResponse{
			FromPosition: move.From.PositionName,
			ToPosition:   move.To.PositionName,
			Date:         move.To.StartDate,
			IsPromotion:  move.IsPromotion,
		})
	}

	return response, nil
}
