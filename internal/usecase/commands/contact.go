package commands

import (
	"context"
	"strings"

	"karoca-backend/internal/domain/booking"
	"karoca-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const maxContactMessageLen = 5000

type SubmitContactParams struct {
	Name    string
	Email   string
	Message string
}

type ContactCommands interface {
	SubmitContactMessage(ctx context.Context, params SubmitContactParams) (uuid.UUID, error)
}

type contactCommandsImpl struct {
	contactRepo ContactRepository
}

func NewContactCommands(contactRepo ContactRepository) ContactCommands {
	return &contactCommandsImpl{contactRepo: contactRepo}
}

func (c *contactCommandsImpl) SubmitContactMessage(ctx context.Context, params SubmitContactParams) (uuid.UUID, error) {
	validation := &ValidationError{}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		validation.Add("name", "name is required")
	}
	if !booking.IsValidEmail(params.Email) {
		validation.Add("email", "a valid email address is required")
	}
	message := strings.TrimSpace(params.Message)
	if message == "" {
		validation.Add("message", "message is required")
	}
	if len(message) > maxContactMessageLen {
		validation.Add("message", "message is too long")
	}

	if validation.HasViolations() {
		return uuid.Nil, validation
	}

	id, err := c.contactRepo.Insert(ctx, name, strings.TrimSpace(params.Email), message)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return id, nil
}
