package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type SyncTicketCommand struct {
	TicketID uint
}

type SyncTicketResult struct {
	HubSoftID string
}

// SyncTicketUseCase pushes one ticket to HubSoft on demand. The periodic
// sweep uses ProcessPendingSyncUseCase instead.
type SyncTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	gateway    HubSoftGateway
	dispatcher events.EventDispatcher
	logger     logger.Interface
}

func NewSyncTicketUseCase(
	ticketRepo ticket.TicketRepository,
	gateway HubSoftGateway,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *SyncTicketUseCase {
	return &SyncTicketUseCase{
		ticketRepo: ticketRepo,
		gateway:    gateway,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *SyncTicketUseCase) Execute(ctx context.Context, cmd SyncTicketCommand) (*SyncTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, mapTicketError(err)
	}

	if t.IsSynced() {
		return &SyncTicketResult{HubSoftID: *t.HubSoftID()}, nil
	}

	externalID, err := uc.gateway.CreateServiceOrder(ctx, t)
	if err != nil {
		uc.logger.Errorw("failed to create service order", "error", err, "protocol", t.Protocol())
		return nil, errors.NewInternalError("failed to sync ticket with hubsoft")
	}

	if err := t.SyncWithHubSoft(externalID); err != nil {
		return nil, mapTicketError(err)
	}

	if err := uc.ticketRepo.UpdateSyncStatus(ctx, t.ID(), externalID); err != nil {
		uc.logger.Errorw("failed to persist sync status", "error", err, "ticket_id", t.ID(), "hubsoft_id", externalID)
		return nil, err
	}

	for _, event := range t.PullEvents() {
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish event", "event_type", event.GetEventType(), "error", err)
		}
	}

	uc.logger.Infow("ticket synced with hubsoft", "ticket_id", t.ID(), "protocol", t.Protocol(), "hubsoft_id", externalID)

	return &SyncTicketResult{HubSoftID: externalID}, nil
}
