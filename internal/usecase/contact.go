package usecase

import (
	"context"
	"fmt"

	"github.com/nuraya/storefront-api/internal/config"
	"github.com/nuraya/storefront-api/internal/sanitize"
	"github.com/nuraya/storefront-api/shared/mailer"
)

// ContactUsecase relays contact-form messages to the shop inbox.
type ContactUsecase interface {
	Send(ctx context.Context, params ContactParams) error
}

// ContactParams defines a contact-form submission.
type ContactParams struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type contactUsecase struct {
	sender EmailSender
	cfg    *config.Config
}

// NewContactUsecase creates a new instance of ContactUsecase.
func NewContactUsecase(sender EmailSender, cfg *config.Config) ContactUsecase {
	return &contactUsecase{
		sender: sender,
		cfg:    cfg,
	}
}

func (u *contactUsecase) Send(_ context.Context, params ContactParams) error {
	if !sanitize.IsValidEmail(params.Email) {
		return ErrInvalidEmail
	}

	htmlBody := mailer.ContactEmail(
		sanitize.String(params.Name),
		sanitize.String(params.Email),
		sanitize.String(params.Subject),
		sanitize.String(params.Message),
	)
	subject := fmt.Sprintf("[Contact] %s", sanitize.String(params.Subject))

	return u.sender.SendHTML([]string{u.cfg.ContactInbox}, subject, htmlBody)
}
