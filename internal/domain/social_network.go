package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxPlatformLength = 50
	MaxUsernameLength = 100
)

// SocialNetwork links the profile to an external platform. The
// platform name is unique within the profile.
type SocialNetwork struct {
	ID         string    `json:"id"`
	ProfileID  string    `json:"profile_id"`
	Platform   string    `json:"platform"`
	URL        string    `json:"url"`
	Username   *string   `json:"username,omitempty"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewSocialNetwork(profileID, platform, rawURL string, orderIndex int, username *string) (*SocialNetwork, error) {
	now := time.Now().UTC()
	s := &SocialNetwork{
		ID:         uuid.NewString(),
		ProfileID:  profileID,
		Platform:   platform,
		URL:        rawURL,
		Username:   username,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

type SocialNetworkPatch struct {
	Platform *string `json:"platform,omitempty"`
	URL      *string `json:"url,omitempty"`
	Username *string `json:"username,omitempty"`
}

func (s *SocialNetwork) Apply(patch SocialNetworkPatch) error {
	next := *s
	if patch.Platform != nil {
		next.Platform = *patch.Platform
	}
	if patch.URL != nil {
		next.URL = *patch.URL
	}
	if patch.Username != nil {
		next.Username = patch.Username
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*s = next
	return nil
}

func (s *SocialNetwork) EntityID() string { return s.ID }
func (s *SocialNetwork) Owner() string    { return s.ProfileID }
func (s *SocialNetwork) Position() int    { return s.OrderIndex }

func (s *SocialNetwork) validate() error {
	if strings.TrimSpace(s.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := requireText("platform", s.Platform, MaxPlatformLength); err != nil {
		return err
	}
	if strings.TrimSpace(s.URL) == "" {
		return errRequired("url")
	}
	if err := validURL("url", &s.URL); err != nil {
		return err
	}
	s.Username = optional(s.Username)
	if err := optionalText("username", s.Username, MaxUsernameLength); err != nil {
		return err
	}
	if s.OrderIndex < 0 {
		return errInvalid("order_index", "must not be negative")
	}
	return nil
}

type SocialNetworkRepository interface {
	OrderedRepository[*SocialNetwork]
	ExistsByPlatform(ctx context.Context, profileID, platform, excludeID string) (bool, error)
}

type SocialNetworkInput struct {
	Platform   string  `json:"platform" validate:"required"`
	URL        string  `json:"url" validate:"required"`
	Username   *string `json:"username"`
	OrderIndex int     `json:"order_index" validate:"gte=0"`
}

type SocialNetworkUsecase interface {
	Create(ctx context.Context, input SocialNetworkInput) (*SocialNetwork, error)
	Update(ctx context.Context, id string, patch SocialNetworkPatch) (*SocialNetwork, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]*SocialNetwork, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}
