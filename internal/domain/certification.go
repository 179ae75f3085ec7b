package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxCertTitleLength    = 100
	MaxIssuerLength       = 100
	MaxCredentialIDLength = 100
)

type Certification struct {
	ID            string     `json:"id"`
	ProfileID     string     `json:"profile_id"`
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	IssueDate     time.Time  `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CredentialID  *string    `json:"credential_id,omitempty"`
	CredentialURL *string    `json:"credential_url,omitempty"`
	OrderIndex    int        `json:"order_index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewCertification(profileID, title, issuer string, issueDate time.Time, orderIndex int, expiryDate *time.Time, credentialID, credentialURL *string) (*Certification, error) {
	now := time.Now().UTC()
	c := &Certification{
		ID:            uuid.NewString(),
		ProfileID:     profileID,
		Title:         title,
		Issuer:        issuer,
		IssueDate:     issueDate,
		ExpiryDate:    expiryDate,
		CredentialID:  credentialID,
		CredentialURL: credentialURL,
		OrderIndex:    orderIndex,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type CertificationPatch struct {
	Title         *string    `json:"title,omitempty"`
	Issuer        *string    `json:"issuer,omitempty"`
	IssueDate     *time.Time `json:"issue_date,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CredentialID  *string    `json:"credential_id,omitempty"`
	CredentialURL *string    `json:"credential_url,omitempty"`
}

func (c *Certification) Apply(patch CertificationPatch) error {
	next := *c
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Issuer != nil {
		next.Issuer = *patch.Issuer
	}
	if patch.IssueDate != nil {
		next.IssueDate = *patch.IssueDate
	}
	if patch.ExpiryDate != nil {
		next.ExpiryDate = patch.ExpiryDate
	}
	if patch.CredentialID != nil {
		next.CredentialID = patch.CredentialID
	}
	if patch.CredentialURL != nil {
		next.CredentialURL = patch.CredentialURL
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*c = next
	return nil
}

// IsExpired reports whether the certification has an expiry date in
// the past.
func (c *Certification) IsExpired() bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(time.Now().UTC())
}

func (c *Certification) EntityID() string { return c.ID }
func (c *Certification) Owner() string    { return c.ProfileID }
func (c *Certification) Position() int    { return c.OrderIndex }

func (c *Certification) validate() error {
	if strings.TrimSpace(c.ProfileID) == "" {
		return errRequired("profile_id")
	}
	if err := requireText("title", c.Title, MaxCertTitleLength); err != nil {
		return err
	}
	if err := requireText("issuer", c.Issuer, MaxIssuerLength); err != nil {
		return err
	}
	if c.IssueDate.IsZero() {
		return errRequired("issue_date")
	}
	if c.ExpiryDate != nil && !c.ExpiryDate.After(c.IssueDate) {
		return errInvalid("expiry_date", "must be after issue_date")
	}
	c.CredentialID = optional(c.CredentialID)
	if err := optionalText("credential_id", c.CredentialID, MaxCredentialIDLength); err != nil {
		return err
	}
	c.CredentialURL = optional(c.CredentialURL)
	if err := validURL("credential_url", c.CredentialURL); err != nil {
		return err
	}
	if c.OrderIndex < 0 {
		return errInvalid("order_index", "must not be negative")
	}
	return nil
}

type CertificationRepository interface {
	OrderedRepository[*Certification]
}

type CertificationInput struct {
	Title         string     `json:"title" validate:"required"`
	Issuer        string     `json:"issuer" validate:"required"`
	IssueDate     time.Time  `json:"issue_date" validate:"required"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  *string    `json:"credential_id"`
	CredentialURL *string    `json:"credential_url"`
	OrderIndex    int        `json:"order_index" validate:"gte=0"`
}

type CertificationUsecase interface {
	Create(ctx context.Context, input CertificationInput) (*Certification, error)
	Update(ctx context.Context, id string, patch CertificationPatch) (*Certification, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]*Certification, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}
