package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxProjectTitleLength = 100
	MinProjectDescLength  = 10
	MaxProjectDescLength  = 2000
	// MinProjectDescWithoutURLs is the sufficiency rule: a project
	// nobody can visit has to explain itself in prose.
	MinProjectDescWithoutURLs = 100
	MaxTechnologies           = 20
	MaxTechnologyLength       = 50
)

type Project struct {
	ID           string     `json:"id"`
	ProfileID    string     `json:"profile_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	LiveURL      *string    `json:"live_url,omitempty"`
	RepoURL      *string    `json:"repo_url,omitempty"`
	Technologies []string   `json:"technologies"`
	OrderIndex   int        `json:"order_index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewProject(profileID, title, description string, startDate time.Time, orderIndex int, endDate *time.Time, liveURL, repoURL *string, technologies []string) (*Project, error) {
	now := time.Now().UTC()
	p := &Project{
		ID:           uuid.NewString(),
		ProfileID:    profileID,
		Title:        title,
		Description:  description,
		StartDate:    startDate,
		EndDate:      endDate,
		LiveURL:      liveURL,
		RepoURL:      repoURL,
		Technologies: technologies,
		OrderIndex:   orderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type ProjectPatch struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	LiveURL      *string    `json:"live_url,omitempty"`
	RepoURL      *string    `json:"repo_url,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
}

// Apply revalidates everything after the patch lands, so dropping both
// URLs from a tersely-described project fails the sufficiency rule the
// same way it would at creation.
func (p *Project) Apply(patch ProjectPatch) error {
	next := *p
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.StartDate != nil {
		next.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		next.EndDate = patch.EndDate
	}
	if patch.LiveURL != nil {
		next.LiveURL = patch.LiveURL
	}
	if patch.RepoURL != nil {
		next.RepoURL = patch.RepoURL
	}
	if patch.Technologies != nil {
		next.Technologies = patch.Technologies
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*p = next
	return nil
}

// IsOngoing reports whether the project has no end date.
func (p *Project) IsOngoing() bool { return p.EndDate == nil }

// HasURLs reports whether a live or repository link is present.
func (p *Project) HasURLs() bool { return p.LiveURL != nil || p.RepoURL != nil }

func (p *Project) EntityID() string { return p.ID }
func (p *Project) Owner() string    { return p.ProfileID }
func (p *Project) Position() int    { return p.OrderIndex }

func (p *Project) validate() error {
	if strings.TrimSpace(p.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := requireText("title", p.Title, MaxProjectTitleLength); err != nil {
		return err
	}
	if strings.TrimSpace(p.Description) == "" {
		return errRequired("description")
	}
	descLen := utf8.RuneCountInString(p.Description)
	if descLen < MinProjectDescLength {
		return errMinLength("description", MinProjectDescLength)
	}
	if descLen > MaxProjectDescLength {
		return errMaxLength("description", MaxProjectDescLength)
	}
	if p.StartDate.IsZero() {
		return errRequired("start_date")
	}
	if p.EndDate != nil && !p.EndDate.After(p.StartDate) {
		return errInvalid("end_date", "must be after start_date")
	}
	p.LiveURL = optional(p.LiveURL)
	if err := validURL("live_url", p.LiveURL); err != nil {
		return err
	}
	p.RepoURL = optional(p.RepoURL)
	if err := validURL("repo_url", p.RepoURL); err != nil {
		return err
	}
	if err := validStringList("technologies", p.Technologies, MaxTechnologies, MaxTechnologyLength); err != nil {
		return err
	}
	if p.OrderIndex < 0 {
		return errInvalid("order_index", "must not be negative")
	}
	if !p.HasURLs() && descLen < MinProjectDescWithoutURLs {
		return errMinLength("description", MinProjectDescWithoutURLs)
	}
	return nil
}

type ProjectRepository interface {
	OrderedRepository[*Project]
}

type ProjectInput struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description" validate:"required"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date"`
	LiveURL      *string    `json:"live_url"`
	RepoURL      *string    `json:"repo_url"`
	Technologies []string   `json:"technologies"`
	OrderIndex   int        `json:"order_index" validate:"gte=0"`
}

type ProjectUsecase interface {
	Create(ctx context.Context, input ProjectInput) (*Project, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (*Project, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]*Project, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}
