package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type ElevateUrgencyCommand struct {
	TicketID uint
}

type ElevateUrgencyResult struct {
	Ticket *TicketDTO
	// Elevated is false when the ticket was already at the highest level.
	Elevated bool
}

type ElevateUrgencyUseCase struct {
	ticketRepo ticket.TicketRepository
	dispatcher events.EventDispatcher
	logger     logger.Interface
}

func NewElevateUrgencyUseCase(
	ticketRepo ticket.TicketRepository,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *ElevateUrgencyUseCase {
	return &ElevateUrgencyUseCase{
		ticketRepo: ticketRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *ElevateUrgencyUseCase) Execute(ctx context.Context, cmd ElevateUrgencyCommand) (*ElevateUrgencyResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, mapTicketError(err)
	}

	before := t.Urgency()
	t.ElevateUrgency()
	if t.Urgency() == before {
		return &ElevateUrgencyResult{Ticket: ticketToDTO(t)}, nil
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	for _, event := range t.PullEvents() {
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish event", "event_type", event.GetEventType(), "error", err)
		}
	}

	uc.logger.Infow("ticket urgency elevated", "ticket_id", cmd.TicketID,
		"from", before.String(), "to", t.Urgency().String())

	return &ElevateUrgencyResult{Ticket: ticketToDTO(t), Elevated: true}, nil
}
