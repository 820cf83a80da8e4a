package usecases

import (
	stderrors "errors"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/shared/errors"
)

// mapConversationError translates domain sentinel errors into app errors so
// the interface layers can answer with the right shape without inspecting
// domain internals.
func mapConversationError(err error) error {
	switch {
	case stderrors.Is(err, conversation.ErrConversationNotFound):
		return errors.NewNotFoundError("no active conversation")
	case stderrors.Is(err, conversation.ErrConversationInactive):
		return errors.NewInvalidStateError("conversation is no longer active")
	case stderrors.Is(err, conversation.ErrUnexpectedStep):
		return errors.NewInvalidStateError(err.Error())
	case stderrors.Is(err, conversation.ErrUnknownCategory),
		stderrors.Is(err, conversation.ErrUnknownGame),
		stderrors.Is(err, conversation.ErrUnknownTiming),
		stderrors.Is(err, conversation.ErrDescriptionTooShort):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, conversation.ErrAttachmentLimit):
		return errors.NewLimitExceededError(err.Error())
	case stderrors.Is(err, conversation.ErrFormIncomplete):
		return errors.NewInvalidStateError("conversation form is incomplete")
	default:
		return err
	}
}
