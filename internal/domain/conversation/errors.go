package conversation

import "errors"

var (
	// ErrConversationNotFound is returned when no conversation matches.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrConversationInactive is returned when an action targets a
	// conversation that already reached a terminal state.
	ErrConversationInactive = errors.New("conversation is not active")

	// ErrUnexpectedStep is returned when an action does not match the step
	// the conversation is currently waiting on.
	ErrUnexpectedStep = errors.New("action does not match the current step")

	// ErrUnknownCategory is returned for a category key outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category key")

	// ErrUnknownGame is returned for a game key outside the fixed set.
	ErrUnknownGame = errors.New("unknown game key")

	// ErrUnknownTiming is returned for a timing key outside the fixed set.
	ErrUnknownTiming = errors.New("unknown timing key")

	// ErrDescriptionTooShort is returned when the description has fewer than
	// the minimum number of characters.
	ErrDescriptionTooShort = errors.New("description is too short")

	// ErrAttachmentLimit is returned when a fourth attachment is submitted.
	ErrAttachmentLimit = errors.New("attachment limit reached")

	// ErrFormIncomplete is returned when completion is attempted with
	// missing form data. It signals a programming error, not user input.
	ErrFormIncomplete = errors.New("conversation form data is incomplete")
)
