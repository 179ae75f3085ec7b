package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxSenderNameLength = 100
	MinMessageLength    = 10
	MaxMessageLength    = 2000
)

// Contact message statuses. A message only ever moves forward:
// pending -> read -> replied.
const (
	MessagePending = "pending"
	MessageRead    = "read"
	MessageReplied = "replied"
)

// ContactMessage is an inbound inquiry from a visitor. Append-only
// except for its status lifecycle.
type ContactMessage struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewContactMessage(name, email, message string) (*ContactMessage, error) {
	m := &ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    MessagePending,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MarkAsRead is a no-op unless the message is still pending.
func (m *ContactMessage) MarkAsRead() {
	if m.Status == MessagePending {
		m.Status = MessageRead
		now := time.Now().UTC()
		m.ReadAt = &now
	}
}

// MarkAsReplied advances to replied and backfills ReadAt with the same
// timestamp when the message was never explicitly read. Calling it on
// an already-replied message changes nothing.
func (m *ContactMessage) MarkAsReplied() {
	if m.Status == MessageReplied {
		return
	}
	m.Status = MessageReplied
	now := time.Now().UTC()
	m.RepliedAt = &now
	if m.ReadAt == nil {
		m.ReadAt = &now
	}
}

func (m *ContactMessage) IsPending() bool { return m.Status == MessagePending }

func (m *ContactMessage) IsRead() bool {
	return m.Status == MessageRead || m.Status == MessageReplied
}

func (m *ContactMessage) IsReplied() bool { return m.Status == MessageReplied }

func (m *ContactMessage) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errRequired("name")
	}
	if utf8.RuneCountInString(m.Name) > MaxSenderNameLength {
		return errMaxLength("name", MaxSenderNameLength)
	}
	if err := validEmail("email", m.Email); err != nil {
		return err
	}
	if strings.TrimSpace(m.Message) == "" {
		return errRequired("message")
	}
	msgLen := utf8.RuneCountInString(m.Message)
	if msgLen < MinMessageLength {
		return errMinLength("message", MinMessageLength)
	}
	if msgLen > MaxMessageLength {
		return errMaxLength("message", MaxMessageLength)
	}
	switch m.Status {
	case MessagePending, MessageRead, MessageReplied:
	default:
		return errInvalid("status", "must be one of: pending, read, replied")
	}
	return nil
}

type ContactMessageRepository interface {
	Add(ctx context.Context, message *ContactMessage) error
	Update(ctx context.Context, message *ContactMessage) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*ContactMessage, error)
	// List returns newest first; status "" means all.
	List(ctx context.Context, status string) ([]*ContactMessage, error)
}

type ContactMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ContactMessageUsecase interface {
	Submit(ctx context.Context, input ContactMessageInput) (*ContactMessage, error)
	List(ctx context.Context, status string) ([]*ContactMessage, error)
	MarkAsRead(ctx context.Context, id string) (*ContactMessage, error)
	MarkAsReplied(ctx context.Context, id string) (*ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
