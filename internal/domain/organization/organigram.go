package organization

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// AssignedPerson is the personnel summary embedded in an organigram row
type AssignedPerson struct {
	ProfileID         uuid.UUID `json:"perfil_id"`
	FullName          string    `json:"nombre_completo"`
	Grade             string    `json:"grado"`
	GradeAbbreviation string    `json:"grado_abreviatura"`
	Position          string    `json:"cargo"`
	ServiceNumber     string    `json:"numero_servicio"`
	IsCommand         bool      `json:"es_comando,omitempty"`
}

// OrganigramRow is one unit with its currently assigned personnel.
// Rows are emitted ordered by hierarchy level then horizontal order,
// which lets a client rebuild the tree by matching ParentID against ID.
type OrganigramRow struct {
	UnitID          uuid.UUID        `json:"id"`
	Code            string           `json:"codigo"`
	Name            string           `json:"nombre"`
	StructureType   string           `json:"tipo_estructura"`
	ParentID        *uuid.UUID       `json:"unidad_padre_id"`
	Level           int              `json:"nivel_jerarquico"`
	HorizontalOrder int              `json:"orden_horizontal"`
	Personnel       []AssignedPerson `json:"personal"`
}

// OrganigramReader produces organigram rows via an aggregating query
// that joins operational units with their current assignments, profiles
// and grades.
type OrganigramReader interface {
	// BuildOrganigram returns one row per operational unit.
	BuildOrganigram(ctx context.Context) ([]OrganigramRow, error)
	// BuildUnitOrganigram returns the row for one unit, with command
	// posts flagged. Returns shared.ErrNotFound for an unknown unit.
	BuildUnitOrganigram(ctx context.Context, unitID uuid.UUID) (*OrganigramRow, error)
}

// OrganigramNode is a reconstructed tree node
type OrganigramNode struct {
	OrganigramRow
	Children []*OrganigramNode `json:"unidades"`
}

// BuildTree reconstructs the unit tree from the flat row list. Rows
// whose parent is missing from the list become roots, so a partial
// listing still renders. Siblings keep horizontal order.
func BuildTree(rows []OrganigramRow) []*OrganigramNode {
	nodes := make(map[uuid.UUID]*OrganigramNode, len(rows))
	for _, row := range rows {
		nodes[row.UnitID] = &OrganigramNode{OrganigramRow: row}
	}

	var roots []*OrganigramNode
	for _, row := range rows {
		node := nodes[row.UnitID]
		if row.ParentID != nil {
			if parent, ok := nodes[*row.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	var sortChildren func(n *OrganigramNode)
	sortChildren = func(n *OrganigramNode) {
		sort.SliceStable(n.Children, func(i, j int) bool {
			return n.Children[i].HorizontalOrder < n.Children[j].HorizontalOrder
		})
		for _, c := range n.Children {
			sortChildren(c)
		}
	}
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].HorizontalOrder < roots[j].HorizontalOrder
	})
	for _, r := range roots {
		sortChildren(r)
	}

	return roots
}
