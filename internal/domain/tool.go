package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxToolNameLength     = 50
	MaxToolCategoryLength = 50
)

// Tool is a piece of everyday tooling (editor, terminal, platform).
// Name is unique within the profile.
type Tool struct {
	ID         string    `json:"id"`
	ProfileID  string    `json:"profile_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	IconURL    *string   `json:"icon_url,omitempty"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewTool(profileID, name, category string, orderIndex int, iconURL *string) (*Tool, error) {
	now := time.Now().UTC()
	t := &Tool{
		ID:         uuid.NewString(),
		ProfileID:  profileID,
		Name:       name,
		Category:   category,
		IconURL:    iconURL,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

type ToolPatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	IconURL  *string `json:"icon_url,omitempty"`
}

func (t *Tool) Apply(patch ToolPatch) error {
	next := *t
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Category != nil {
		next.Category = *patch.Category
	}
	if patch.IconURL != nil {
		next.IconURL = patch.IconURL
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*t = next
	return nil
}

func (t *Tool) EntityID() string { return t.ID }
func (t *Tool) Owner() string    { return t.ProfileID }
func (t *Tool) Position() int    { return t.OrderIndex }

func (t *Tool) validate() error {
	if strings.TrimSpace(t.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := requireText("name", t.Name, MaxToolNameLength); err != nil {
		return err
	}
	if err := requireText("category", t.Category, MaxToolCategoryLength); err != nil {
		return err
	}
	t.IconURL = optional(t.IconURL)
	if err := validURL("icon_url", t.IconURL); err != nil {
		return err
	}
	if t.OrderIndex < 0 {
		return errInvalid("order_index", "must not be negative")
	}
	return nil
}

type ToolRepository interface {
	OrderedRepository[*Tool]
	ExistsByName(ctx context.Context, profileID, name, excludeID string) (bool, error)
}

type ToolInput struct {
	Name       string  `json:"name" validate:"required"`
	Category   string  `json:"category" validate:"required"`
	IconURL    *string `json:"icon_url"`
	OrderIndex int     `json:"order_index" validate:"gte=0"`
}

type ToolUsecase interface {
	Create(ctx context.Context, input ToolInput) (*Tool, error)
	Update(ctx context.Context, id string, patch ToolPatch) (*Tool, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]*Tool, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}
