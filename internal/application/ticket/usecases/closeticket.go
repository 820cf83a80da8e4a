package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID        uint
	ResolutionNotes string
}

type CloseTicketResult struct {
	Ticket *TicketDTO
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	dispatcher events.EventDispatcher
	notifier   StatusNotifier
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.TicketRepository,
	dispatcher events.EventDispatcher,
	notifier StatusNotifier,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ResolutionNotes == "" {
		return nil, errors.NewValidationError("resolution notes are required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, mapTicketError(err)
	}

	oldStatus := t.Status().String()
	if err := t.CloseWithResolution(cmd.ResolutionNotes); err != nil {
		uc.logger.Warnw("ticket close rejected", "error", err, "ticket_id", cmd.TicketID)
		return nil, mapTicketError(err)
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

	if err := uc.notifier.NotifyStatusChanged(ctx, t, oldStatus); err != nil {
		uc.logger.Warnw("failed to notify user", "error", err, "protocol", t.Protocol())
	}

	uc.logger.Infow("ticket closed", "ticket_id", cmd.TicketID, "protocol", t.Protocol())

	return &CloseTicketResult{Ticket: ticketToDTO(t)}, nil
}
