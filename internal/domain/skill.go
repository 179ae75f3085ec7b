package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxSkillNameLength = 50

// SkillLevels is the allowed proficiency vocabulary.
var SkillLevels = []string{"basic", "intermediate", "advanced", "expert"}

// SkillCategories is the allowed category vocabulary.
var SkillCategories = []string{
	"backend", "frontend", "devops", "database",
	"mobile", "cloud", "testing", "design", "other",
}

// Skill is a technology the owner works with. Its name is unique
// within the profile.
type Skill struct {
	ID         string    `json:"id"`
	ProfileID  string    `json:"profile_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Level      string    `json:"level"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewSkill(profileID, name, category, level string, orderIndex int) (*Skill, error) {
	now := time.Now().UTC()
	s := &Skill{
		ID:         uuid.NewString(),
		ProfileID:  profileID,
		Name:       name,
		Category:   category,
		Level:      level,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

type SkillPatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Level    *string `json:"level,omitempty"`
}

func (s *Skill) Apply(patch SkillPatch) error {
	next := *s
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Category != nil {
		next.Category = *patch.Category
	}
	if patch.Level != nil {
		next.Level = *patch.Level
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*s = next
	return nil
}

func (s *Skill) EntityID() string { return s.ID }
func (s *Skill) Owner() string    { return s.ProfileID }
func (s *Skill) Position() int    { return s.OrderIndex }

func (s *Skill) validate() error {
	if strings.TrimSpace(s.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := requireText("name", s.Name, MaxSkillNameLength); err != nil {
		return err
	}
	if !inVocabulary(s.Category, SkillCategories) {
		return errInvalid("category", "must be one of: "+strings.Join(SkillCategories, ", "))
	}
	if !inVocabulary(s.Level, SkillLevels) {
		return errInvalid("level", "must be one of: "+strings.Join(SkillLevels, ", "))
	}
	if s.OrderIndex < 0 {
		return errInvalid("order_index", "must not be negative")
	}
	return nil
}

func inVocabulary(value string, allowed []string) bool {
	for _, v := range allowed {
		if value == v {
			return true
		}
	}
	return false
}

type SkillRepository interface {
	OrderedRepository[*Skill]
	// ExistsByName excludes excludeID so an entity can keep its own
	// name across updates. Pass "" when creating.
	ExistsByName(ctx context.Context, profileID, name, excludeID string) (bool, error)
}

type SkillInput struct {
	Name       string `json:"name" validate:"required"`
	Category   string `json:"category" validate:"required"`
	Level      string `json:"level" validate:"required"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

type SkillUsecase interface {
	Create(ctx context.Context, input SkillInput) (*Skill, error)
	Update(ctx context.Context, id string, patch SkillPatch) (*Skill, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]*Skill, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}
