package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxRoleLength           = 100
	MaxCompanyLength        = 100
	MaxExperienceDescLength = 2000
	MaxResponsibilities     = 20
	MaxResponsibilityLength = 500
)

// WorkExperience is one professional role in the portfolio timeline.
type WorkExperience struct {
	ID               string     `json:"id"`
	ProfileID        string     `json:"profile_id"`
	Role             string     `json:"role"`
	Company          string     `json:"company"`
	Description      *string    `json:"description,omitempty"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Responsibilities []string   `json:"responsibilities"`
	OrderIndex       int        `json:"order_index"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewWorkExperience(profileID, role, company string, startDate time.Time, orderIndex int, description *string, endDate *time.Time, responsibilities []string) (*WorkExperience, error) {
	now := time.Now().UTC()
	e := &WorkExperience{
		ID:               uuid.NewString(),
		ProfileID:        profileID,
		Role:             role,
		Company:          company,
		Description:      description,
		StartDate:        startDate,
		EndDate:          endDate,
		Responsibilities: responsibilities,
		OrderIndex:       orderIndex,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

type WorkExperiencePatch struct {
	Role             *string    `json:"role,omitempty"`
	Company          *string    `json:"company,omitempty"`
	Description      *string    `json:"description,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Responsibilities []string   `json:"responsibilities,omitempty"`
}

func (e *WorkExperience) Apply(patch WorkExperiencePatch) error {
	next := *e
	if patch.Role != nil {
		next.Role = *patch.Role
	}
	if patch.Company != nil {
		next.Company = *patch.Company
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
	if patch.Responsibilities != nil {
		next.Responsibilities = patch.Responsibilities
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*e = next
	return nil
}

// IsCurrent reports whether this is an ongoing position.
func (e *WorkExperience) IsCurrent() bool { return e.EndDate == nil }

func (e *WorkExperience) EntityID() string { return e.ID }
func (e *WorkExperience) Owner() string    { return e.ProfileID }
func (e *WorkExperience) Position() int    { return e.OrderIndex }

func (e *WorkExperience) validate() error {
	if strings.TrimSpace(e.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := requireText("role", e.Role, MaxRoleLength); err != nil {
		return err
	}
	if err := requireText("company", e.Company, MaxCompanyLength); err != nil {
		return err
	}
	e.Description = optional(e.Description)
	if err := optionalText("description", e.Description, MaxExperienceDescLength); err != nil {
		return err
	}
	if e.StartDate.IsZero() {
		return errRequired("start_date")
	}
	// Strict inequality: an end date equal to the start date is as
	// incoherent as one before it.
	if e.EndDate != nil && !e.EndDate.After(e.StartDate) {
		return errInvalid("end_date", "must be after start_date")
	}
	if err := validStringList("responsibilities", e.Responsibilities, MaxResponsibilities, MaxResponsibilityLength); err != nil {
		return err
	}
	if e.OrderIndex < 0 {
		return errInvalid("order_index", "must not be negative")
	}
	return nil
}

type WorkExperienceRepository interface {
	OrderedRepository[*WorkExperience]
}

type WorkExperienceInput struct {
	Role             string     `json:"role" validate:"required"`
	Company          string     `json:"company" validate:"required"`
	Description      *string    `json:"description"`
	StartDate        time.Time  `json:"start_date" validate:"required"`
	EndDate          *time.Time `json:"end_date"`
	Responsibilities []string   `json:"responsibilities"`
	OrderIndex       int        `json:"order_index" validate:"gte=0"`
}

type WorkExperienceUsecase interface {
	Create(ctx context.Context, input WorkExperienceInput) (*WorkExperience, error)
	Update(ctx context.Context, id string, patch WorkExperiencePatch) (*WorkExperience, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]*WorkExperience, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}
