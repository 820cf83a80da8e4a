package ticket

import "errors"

var (
	// ErrTicketNotFound is returned when a ticket is not found.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrInvalidTransition is returned when a status change is not permitted
	// by the lifecycle table.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrAttachmentLimit is returned when adding an attachment would exceed
	// the cap of three per ticket.
	ErrAttachmentLimit = errors.New("attachment limit reached")

	// ErrAlreadySynced is returned when a ticket already carries a different
	// HubSoft identifier.
	ErrAlreadySynced = errors.New("ticket already synced with a different HubSoft id")

	// ErrDescriptionTooShort is returned when the description has fewer than
	// the minimum number of characters.
	ErrDescriptionTooShort = errors.New("description is too short")
)
