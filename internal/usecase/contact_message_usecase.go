package usecase

import (
	"context"
	"log/slog"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

type contactMessageUsecase struct {
	repo         domain.ContactMessageRepository
	emailService *email.EmailService
	validate     *validator.Validate
}

// NewContactMessageUsecase creates a new contact message usecase
func NewContactMessageUsecase(repo domain.ContactMessageRepository, emailService *email.EmailService, validate *validator.Validate) domain.ContactMessageUsecase {
	return &contactMessageUsecase{
		repo:         repo,
		emailService: emailService,
		validate:     validate,
	}
}

// Submit stores an inbound message and, when SMTP is configured,
// notifies the site owner. Notification failures are logged, never
// surfaced: the message is already persisted.
func (u *contactMessageUsecase) Submit(ctx context.Context, input domain.ContactMessageInput) (*domain.ContactMessage, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	message, err := domain.NewContactMessage(input.Name, input.Email, input.Message)
	if err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Add(ctx, message); err != nil {
		return nil, err
	}

	if u.emailService.IsConfigured() {
		go func(m domain.ContactMessage) {
			err := u.emailService.SendMessageNotification(email.MessageNotification{
				SenderName:  m.Name,
				SenderEmail: m.Email,
				Message:     m.Message,
			})
			if err != nil {
				slog.Error("failed to send contact notification", "message_id", m.ID, "error", err)
			}
		}(*message)
	}

	return message, nil
}

func (u *contactMessageUsecase) List(ctx context.Context, status string) ([]*domain.ContactMessage, error) {
	switch status {
	case "", domain.MessagePending, domain.MessageRead, domain.MessageReplied:
	default:
		return nil, apperror.BadRequest("status must be one of pending, read, replied")
	}
	return u.repo.List(ctx, status)
}

func (u *contactMessageUsecase) MarkAsRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return u.transition(ctx, id, (*domain.ContactMessage).MarkAsRead)
}

func (u *contactMessageUsecase) MarkAsReplied(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return u.transition(ctx, id, (*domain.ContactMessage).MarkAsReplied)
}

// transition loads, advances and persists a message. The domain
// methods are idempotent so repeating a transition is harmless.
func (u *contactMessageUsecase) transition(ctx context.Context, id string, advance func(*domain.ContactMessage)) (*domain.ContactMessage, error) {
	message, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, asAppError(&domain.NotFoundError{Entity: "message", ID: id})
		}
		return nil, err
	}
	advance(message)
	if err := u.repo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (u *contactMessageUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return asAppError(&domain.NotFoundError{Entity: "message", ID: id})
	}
	return nil
}
