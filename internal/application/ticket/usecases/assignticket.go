package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID     uint
	TechnicianID uint
}

type AssignTicketResult struct {
	Ticket *TicketDTO
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	dispatcher events.EventDispatcher
	notifier   StatusNotifier
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	dispatcher events.EventDispatcher,
	notifier StatusNotifier,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.TechnicianID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, mapTicketError(err)
	}

	oldStatus := t.Status().String()
	if err := t.AssignToTechnician(cmd.TechnicianID); err != nil {
		uc.logger.Warnw("ticket assignment rejected", "error", err, "ticket_id", cmd.TicketID)
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

	uc.logger.Infow("ticket assigned", "ticket_id", cmd.TicketID, "technician_id", cmd.TechnicianID)

	return &AssignTicketResult{Ticket: ticketToDTO(t)}, nil
}
