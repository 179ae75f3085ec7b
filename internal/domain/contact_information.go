package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactInformation is how visitors can reach the owner. Like
// Profile it is a singleton: at most one per system.
type ContactInformation struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	LinkedIn  *string   `json:"linkedin,omitempty"`
	GitHub    *string   `json:"github,omitempty"`
	Website   *string   `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewContactInformation(profileID, email string, phone, linkedin, github, website *string) (*ContactInformation, error) {
	now := time.Now().UTC()
	c := &ContactInformation{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Email:     email,
		Phone:     phone,
		LinkedIn:  linkedin,
		GitHub:    github,
		Website:   website,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type ContactInformationPatch struct {
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Website  *string `json:"website,omitempty"`
}

func (c *ContactInformation) Apply(patch ContactInformationPatch) error {
	next := *c
	if patch.Email != nil {
		next.Email = *patch.Email
	}
	if patch.Phone != nil {
		next.Phone = patch.Phone
	}
	if patch.LinkedIn != nil {
		next.LinkedIn = patch.LinkedIn
	}
	if patch.GitHub != nil {
		next.GitHub = patch.GitHub
	}
	if patch.Website != nil {
		next.Website = patch.Website
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*c = next
	return nil
}

func (c *ContactInformation) validate() error {
	if strings.TrimSpace(c.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := validEmail("email", c.Email); err != nil {
		return err
	}
	c.Phone = optional(c.Phone)
	if c.Phone != nil {
		normalized := normalizePhone(*c.Phone)
		c.Phone = &normalized
	}
	if err := validPhone("phone", c.Phone); err != nil {
		return err
	}
	c.LinkedIn = optional(c.LinkedIn)
	if err := validURL("linkedin", c.LinkedIn); err != nil {
		return err
	}
	c.GitHub = optional(c.GitHub)
	if err := validURL("github", c.GitHub); err != nil {
		return err
	}
	c.Website = optional(c.Website)
	if err := validURL("website", c.Website); err != nil {
		return err
	}
	return nil
}

type ContactInformationRepository interface {
	Create(ctx context.Context, info *ContactInformation) error
	Update(ctx context.Context, info *ContactInformation) error
	Get(ctx context.Context) (*ContactInformation, error)
	Count(ctx context.Context) (int, error)
}

type ContactInformationInput struct {
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Website  *string `json:"website"`
}

type ContactInformationUsecase interface {
	Create(ctx context.Context, input ContactInformationInput) (*ContactInformation, error)
	Get(ctx context.Context) (*ContactInformation, error)
	Update(ctx context.Context, patch ContactInformationPatch) (*ContactInformation, error)
}
