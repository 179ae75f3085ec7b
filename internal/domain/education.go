package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxInstitutionLength   = 100
	MaxDegreeLength        = 100
	MaxFieldOfStudyLength  = 100
	MaxEducationDescLength = 1000
)

type Education struct {
	ID           string     `json:"id"`
	ProfileID    string     `json:"profile_id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field"`
	Description  *string    `json:"description,omitempty"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	OrderIndex   int        `json:"order_index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewEducation(profileID, institution, degree, fieldOfStudy string, startDate time.Time, orderIndex int, description *string, endDate *time.Time) (*Education, error) {
	now := time.Now().UTC()
	e := &Education{
		ID:           uuid.NewString(),
		ProfileID:    profileID,
		Institution:  institution,
		Degree:       degree,
		FieldOfStudy: fieldOfStudy,
		Description:  description,
		StartDate:    startDate,
		EndDate:      endDate,
		OrderIndex:   orderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

type EducationPatch struct {
	Institution  *string    `json:"institution,omitempty"`
	Degree       *string    `json:"degree,omitempty"`
	FieldOfStudy *string    `json:"field,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

func (e *Education) Apply(patch EducationPatch) error {
	next := *e
	if patch.Institution != nil {
		next.Institution = *patch.Institution
	}
	if patch.Degree != nil {
		next.Degree = *patch.Degree
	}
	if patch.FieldOfStudy != nil {
		next.FieldOfStudy = *patch.FieldOfStudy
	}
	if patch.Description != nil {
		next.Description = patch.Description
	}
	if patch.StartDate != nil {
		next.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		next.EndDate = patch.EndDate
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*e = next
	return nil
}

func (e *Education) EntityID() string { return e.ID }
func (e *Education) Owner() string    { return e.ProfileID }
func (e *Education) Position() int    { return e.OrderIndex }

func (e *Education) validate() error {
	if strings.TrimSpace(e.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := requireText("institution", e.Institution, MaxInstitutionLength); err != nil {
		return err
	}
	if err := requireText("degree", e.Degree, MaxDegreeLength); err != nil {
		return err
	}
	if err := requireText("field", e.FieldOfStudy, MaxFieldOfStudyLength); err != nil {
		return err
	}
	e.Description = optional(e.Description)
	if err := optionalText("description", e.Description, MaxEducationDescLength); err != nil {
		return err
	}
	if e.StartDate.IsZero() {
		return errRequired("start_date")
	}
	if e.EndDate != nil && !e.EndDate.After(e.StartDate) {
		return errInvalid("end_date", "must be after start_date")
	}
	if e.OrderIndex < 0 {
		return errInvalid("order_index", "must not be negative")
	}
	return nil
}

type EducationRepository interface {
	OrderedRepository[*Education]
}

type EducationInput struct {
	Institution  string     `json:"institution" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"field" validate:"required"`
	Description  *string    `json:"description"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date"`
	OrderIndex   int        `json:"order_index" validate:"gte=0"`
}

type EducationUsecase interface {
	Create(ctx context.Context, input EducationInput) (*Education, error)
	Update(ctx context.Context, id string, patch EducationPatch) (*Education, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]*Education, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}
