package personnel

import (
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MilitaryProfile identifies one service member. Grade and service
// status live in the catalog context and are referenced by ID only;
// callers resolve them through lookups and must handle a missing
// reference explicitly.
type MilitaryProfile struct {
	shared.AuditedAggregateRoot
	ServiceNumber   string
	FirstName       string
	LastName        string
	DocumentID      string
	BirthDate       *time.Time
	GradeID         uuid.UUID
	ServiceStatusID uuid.UUID
	Active          bool
}

// NewMilitaryProfile creates a new profile
func NewMilitaryProfile(serviceNumber, firstName, lastName, documentID string, gradeID, serviceStatusID uuid.UUID) (*MilitaryProfile, error) {
	if strings.TrimSpace(serviceNumber) == "" {
		return nil, shared.NewDomainError("INVALID_SERVICE_NUMBER", "Service number cannot be empty")
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}
	if gradeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GRADE", "Grade reference is required")
	}
	if serviceStatusID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SERVICE_STATUS", "Service status reference is required")
	}

	return &MilitaryProfile{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		ServiceNumber:        strings.TrimSpace(serviceNumber),
		FirstName:            strings.TrimSpace(firstName),
		LastName:             strings.TrimSpace(lastName),
		DocumentID:           strings.TrimSpace(documentID),
		GradeID:              gradeID,
		ServiceStatusID:      serviceStatusID,
		Active:               true,
	}, nil
}

// FullName returns "FirstName LastName"
func (p *MilitaryProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// UpdateIdentity updates the personal-data fields
func (p *MilitaryProfile) UpdateIdentity(firstName, lastName, documentID string, birthDate *time.Time) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}

	p.FirstName = strings.TrimSpace(firstName)
	p.LastName = strings.TrimSpace(lastName)
	p.DocumentID = strings.TrimSpace(documentID)
	p.BirthDate = birthDate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// ChangeGrade records a grade change (promotion or demotion)
func (p *MilitaryProfile) ChangeGrade(gradeID uuid.UUID) error {
	if gradeID == uuid.Nil {
		return shared.NewDomainError("INVALID_GRADE", "Grade reference is required")
	}
	p.GradeID = gradeID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// ChangeServiceStatus records a service-situation change
func (p *MilitaryProfile) ChangeServiceStatus(statusID uuid.UUID) error {
	if statusID == uuid.Nil {
		return shared.NewDomainError("INVALID_SERVICE_STATUS", "Service status reference is required")
	}
	p.ServiceStatusID = statusID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Deactivate retires the profile without deleting it
func (p *MilitaryProfile) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// TableName returns the database table name
func (MilitaryProfile) TableName() string {
	return "perfiles_militares"
}
