package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxProfileNameLength     = 100
	MaxProfileHeadlineLength = 100
	MaxProfileBioLength      = 1000
	MaxProfileLocationLength = 100
)

// Profile is the aggregate root every other entity hangs off. The
// system holds at most one; the count invariant is enforced at the
// write boundary, not baked into this type.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Headline  string    `json:"headline"`
	Bio       *string   `json:"bio,omitempty"`
	Location  *string   `json:"location,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProfile(name, headline string, bio, location, avatarURL *string) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		ID:        uuid.NewString(),
		Name:      name,
		Headline:  headline,
		Bio:       bio,
		Location:  location,
		AvatarURL: avatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ProfilePatch carries a partial update; nil fields are untouched.
type ProfilePatch struct {
	Name      *string `json:"name,omitempty"`
	Headline  *string `json:"headline,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Apply patches the profile field-by-field, then revalidates the whole
// entity. On a rule violation the profile is left unchanged.
func (p *Profile) Apply(patch ProfilePatch) error {
	next := *p
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Headline != nil {
		next.Headline = *patch.Headline
	}
	if patch.Bio != nil {
		next.Bio = patch.Bio
	}
	if patch.Location != nil {
		next.Location = patch.Location
	}
	if patch.AvatarURL != nil {
		next.AvatarURL = patch.AvatarURL
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*p = next
	return nil
}

func (p *Profile) validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errRequired("id")
	}
	if err := requireText("name", p.Name, MaxProfileNameLength); err != nil {
		return err
	}
	if err := requireText("headline", p.Headline, MaxProfileHeadlineLength); err != nil {
		return err
	}
	p.Bio = optional(p.Bio)
	if err := optionalText("bio", p.Bio, MaxProfileBioLength); err != nil {
		return err
	}
	p.Location = optional(p.Location)
	if err := optionalText("location", p.Location, MaxProfileLocationLength); err != nil {
		return err
	}
	p.AvatarURL = optional(p.AvatarURL)
	if err := validURL("avatar_url", p.AvatarURL); err != nil {
		return err
	}
	return nil
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	// Get returns the singleton profile, or ErrNotFound when none exists.
	Get(ctx context.Context) (*Profile, error)
	Count(ctx context.Context) (int, error)
}

type ProfileInput struct {
	Name      string  `json:"name" validate:"required"`
	Headline  string  `json:"headline" validate:"required"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	AvatarURL *string `json:"avatar_url"`
}

type ProfileUsecase interface {
	Create(ctx context.Context, input ProfileInput) (*Profile, error)
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, patch ProfilePatch) (*Profile, error)
}
