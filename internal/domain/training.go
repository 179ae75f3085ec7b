package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxTrainingTitleLength = 100
	MaxProviderLength      = 100
	MaxDurationLength      = 50
	MaxTrainingDescLength  = 500
)

// AdditionalTraining covers courses and workshops that are not formal
// education or certifications.
type AdditionalTraining struct {
	ID             string     `json:"id"`
	ProfileID      string     `json:"profile_id"`
	Title          string     `json:"title"`
	Provider       string     `json:"provider"`
	CompletionDate time.Time  `json:"completion_date"`
	Duration       *string    `json:"duration,omitempty"`
	CertificateURL *string    `json:"certificate_url,omitempty"`
	Description    *string    `json:"description,omitempty"`
	OrderIndex     int        `json:"order_index"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func NewAdditionalTraining(profileID, title, provider string, completionDate time.Time, orderIndex int, duration, certificateURL, description *string) (*AdditionalTraining, error) {
	now := time.Now().UTC()
	t := &AdditionalTraining{
		ID:             uuid.NewString(),
		ProfileID:      profileID,
		Title:          title,
		Provider:       provider,
		CompletionDate: completionDate,
		Duration:       duration,
		CertificateURL: certificateURL,
		Description:    description,
		OrderIndex:     orderIndex,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

type AdditionalTrainingPatch struct {
	Title          *string    `json:"title,omitempty"`
	Provider       *string    `json:"provider,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Duration       *string    `json:"duration,omitempty"`
	CertificateURL *string    `json:"certificate_url,omitempty"`
	Description    *string    `json:"description,omitempty"`
}

func (t *AdditionalTraining) Apply(patch AdditionalTrainingPatch) error {
	next := *t
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Provider != nil {
		next.Provider = *patch.Provider
	}
	if patch.CompletionDate != nil {
		next.CompletionDate = *patch.CompletionDate
	}
	if patch.Duration != nil {
		next.Duration = patch.Duration
	}
	if patch.CertificateURL != nil {
		next.CertificateURL = patch.CertificateURL
	}
	if patch.Description != nil {
		next.Description = patch.Description
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*t = next
	return nil
}

func (t *AdditionalTraining) EntityID() string { return t.ID }
func (t *AdditionalTraining) Owner() string    { return t.ProfileID }
func (t *AdditionalTraining) Position() int    { return t.OrderIndex }

func (t *AdditionalTraining) validate() error {
	if strings.TrimSpace(t.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := requireText("title", t.Title, MaxTrainingTitleLength); err != nil {
		return err
	}
	if err := requireText("provider", t.Provider, MaxProviderLength); err != nil {
		return err
	}
	if t.CompletionDate.IsZero() {
		return errRequired("completion_date")
	}
	t.Duration = optional(t.Duration)
	if err := optionalText("duration", t.Duration, MaxDurationLength); err != nil {
		return err
	}
	t.CertificateURL = optional(t.CertificateURL)
	if err := validURL("certificate_url", t.CertificateURL); err != nil {
		return err
	}
	t.Description = optional(t.Description)
	if err := optionalText("description", t.Description, MaxTrainingDescLength); err != nil {
		return err
	}
	if t.OrderIndex < 0 {
		return errInvalid("order_index", "must not be negative")
	}
	return nil
}

type AdditionalTrainingRepository interface {
	OrderedRepository[*AdditionalTraining]
}

type AdditionalTrainingInput struct {
	Title          string     `json:"title" validate:"required"`
	Provider       string     `json:"provider" validate:"required"`
	CompletionDate time.Time  `json:"completion_date" validate:"required"`
	Duration       *string    `json:"duration"`
	CertificateURL *string    `json:"certificate_url"`
	Description    *string    `json:"description"`
	OrderIndex     int        `json:"order_index" validate:"gte=0"`
}

type AdditionalTrainingUsecase interface {
	Create(ctx context.Context, input AdditionalTrainingInput) (*AdditionalTraining, error)
	Update(ctx context.Context, id string, patch AdditionalTrainingPatch) (*AdditionalTraining, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]*AdditionalTraining, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}
