package organization

import (
	"context"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrHierarchyCycle is returned when a parent chain loops back on
// itself. A corrupted chain must surface as an error instead of an
// unbounded walk.
var ErrHierarchyCycle = shared.NewDomainError("HIERARCHY_CYCLE", "Unit parent chain contains a cycle")

// ParentResolver resolves a unit by ID while walking the parent chain
type ParentResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrganizationalUnit, error)
}

// HierarchyPath walks the parent chain upward from the given unit and
// returns the unit codes ordered root first. The visited set turns a
// malformed chain (self-reference or cycle) into ErrHierarchyCycle.
func HierarchyPath(ctx context.Context, resolver ParentResolver, unitID uuid.UUID) ([]string, error) {
	visited := make(map[uuid.UUID]struct{})
	var reversed []string

	current, err := resolver.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}

	for current != nil {
		if _, seen := visited[current.ID]; seen {
			return nil, ErrHierarchyCycle
		}
		visited[current.ID] = struct{}{}
		reversed = append(reversed, current.Code)

		if current.ParentID == nil {
			break
		}
		current, err = resolver.FindByID(ctx, *current.ParentID)
		if err != nil {
			return nil, err
		}
	}

	path := make([]string, len(reversed))
	for i, code := range reversed {
		path[len(reversed)-1-i] = code
	}
	return path, nil
}
