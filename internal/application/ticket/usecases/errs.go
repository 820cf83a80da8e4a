package usecases

import (
	stderrors "errors"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/errors"
)

func mapTicketError(err error) error {
	switch {
	case stderrors.Is(err, ticket.ErrTicketNotFound):
		return errors.NewNotFoundError("ticket not found")
	case stderrors.Is(err, ticket.ErrInvalidTransition):
		return errors.NewInvalidTransitionError(err.Error())
	case stderrors.Is(err, ticket.ErrAttachmentLimit):
		return errors.NewLimitExceededError(err.Error())
	case stderrors.Is(err, ticket.ErrAlreadySynced):
		return errors.NewConflictError(err.Error())
	case stderrors.Is(err, ticket.ErrDescriptionTooShort):
		return errors.NewValidationError(err.Error())
	default:
		return err
	}
}
