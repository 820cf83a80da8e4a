package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
}

type ChangeStatusResult struct {
	Ticket *TicketDTO
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	dispatcher events.EventDispatcher
	notifier   StatusNotifier
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	dispatcher events.EventDispatcher,
	notifier StatusNotifier,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, mapTicketError(err)
	}

	oldStatus := t.Status().String()
	if err := t.ChangeStatus(newStatus); err != nil {
		uc.logger.Warnw("status change rejected", "error", err, "ticket_id", cmd.TicketID,
			"from", oldStatus, "to", cmd.NewStatus)
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

	uc.logger.Infow("ticket status changed", "ticket_id", cmd.TicketID, "from", oldStatus, "to", cmd.NewStatus)

	return &ChangeStatusResult{Ticket: ticketToDTO(t)}, nil
}
