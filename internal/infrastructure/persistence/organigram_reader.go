package persistence

import (
	"context"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrganigramReader implements organization.OrganigramReader with a
// single aggregating query over units, current assignments, profiles,
// grades and positions.
type GormOrganigramReader struct {
	db *gorm.DB
}

// NewGormOrganigramReader creates a new GormOrganigramReader
func NewGormOrganigramReader(db *gorm.DB) *GormOrganigramReader {
	return &GormOrganigramReader{db: db}
}

// organigramScan is the flat shape the join produces, one line per
// unit/person pair. Units without personnel come back with a nil
// profile_id from the left join.
type organigramScan struct {
	UnitID            uuid.UUID
	UnitCode          string
	UnitName          string
	StructureType     string
	ParentID          *uuid.UUID
	Level             int
	HorizontalOrder   int
	ProfileID         *uuid.UUID
	FirstName         *string
	LastName          *string
	ServiceNumber     *string
	GradeName         *string
	GradeAbbreviation *string
	PositionName      *string
	IsCommand         *bool
}

const organigramQuery = `
SELECT
    u.id                AS unit_id,
    u.code              AS unit_code,
    u.name              AS unit_name,
    COALESCE(t.name, '') AS structure_type,
    u.parent_id,
    u.level,
    u.horizontal_order,
    p.id                AS profile_id,
    p.first_name,
    p.last_name,
    p.service_number,
    g.name              AS grade_name,
    g.abbreviation      AS grade_abbreviation,
    c.name              AS position_name,
    c.is_command
FROM estructura_militar u
LEFT JOIN tipos_estructura_militar t
    ON t.id = u.structure_type_id AND t.deleted_at IS NULL
LEFT JOIN asignaciones_actuales a
    ON a.unit_id = u.id
    AND a.deleted_at IS NULL
    AND a.active = true
    AND a.start_date <= now()
    AND (a.end_date IS NULL OR a.end_date >= now())
LEFT JOIN perfiles_militares p
    ON p.id = a.profile_id AND p.deleted_at IS NULL AND p.active = true
LEFT JOIN grados g
    ON g.id = p.grade_id AND g.deleted_at IS NULL
LEFT JOIN cargos c
    ON c.id = a.position_id AND c.deleted_at IS NULL
WHERE u.deleted_at IS NULL
  AND u.active = true
  AND (u.deactivated_at IS NULL OR u.deactivated_at > now())
`

const organigramOrder = `
ORDER BY u.level ASC, u.horizontal_order ASC, u.code ASC,
         g.rank_order ASC NULLS LAST, p.last_name ASC NULLS LAST
`

// BuildOrganigram returns one row per operational unit with its
// currently assigned personnel, ranked grade first.
func (r *GormOrganigramReader) BuildOrganigram(ctx context.Context) ([]organization.OrganigramRow, error) {
	var lines []organigramScan
	if err := r.db.WithContext(ctx).
		Raw(organigramQuery + organigramOrder).
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return foldOrganigram(lines), nil
}

// BuildUnitOrganigram returns the row for one unit only
func (r *GormOrganigramReader) BuildUnitOrganigram(ctx context.Context, unitID uuid.UUID) (*organization.OrganigramRow, error) {
	var lines []organigramScan
	if err := r.db.WithContext(ctx).
		Raw(organigramQuery+" AND u.id = ?"+organigramOrder, unitID).
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	rows := foldOrganigram(lines)
	if len(rows) == 0 {
		return nil, shared.ErrNotFound
	}
	return &rows[0], nil
}

// foldOrganigram groups the flat join lines into one row per unit,
// keeping the query's ordering for both units and personnel.
func foldOrganigram(lines []organigramScan) []organization.OrganigramRow {
	rows := make([]organization.OrganigramRow, 0)
	index := make(map[uuid.UUID]int)

	for _, line := range lines {
		i, seen := index[line.UnitID]
		if !seen {
			rows = append(rows, organization.OrganigramRow{
				UnitID:          line.UnitID,
				Code:            line.UnitCode,
				Name:            line.UnitName,
				StructureType:   line.StructureType,
				ParentID:        line.ParentID,
				Level:           line.Level,
				HorizontalOrder: line.HorizontalOrder,
				Personnel:       []organization.AssignedPerson{},
			})
			i = len(rows) - 1
			index[line.UnitID] = i
		}

		if line.ProfileID == nil {
			continue
		}

		person := organization.AssignedPerson{
			ProfileID: *line.ProfileID,
		}
		if line.FirstName != nil && line.LastName != nil {
			person.FullName = *line.FirstName + " " + *line.LastName
		}
		if line.GradeName != nil {
			person.Grade = *line.GradeName
		}
		if line.GradeAbbreviation != nil {
			person.GradeAbbreviation = *line.GradeAbbreviation
		}
		if line.PositionName != nil {
			person.Position = *line.PositionName
		}
		if line.ServiceNumber != nil {
			person.ServiceNumber = *line.ServiceNumber
		}
		if line.IsCommand != nil {
			person.IsCommand = *line.IsCommand
		}
		rows[i].Personnel = append(rows[i].Personnel, person)
	}

	return rows
}

var _ organization.OrganigramReader = (*GormOrganigramReader)(nil)
