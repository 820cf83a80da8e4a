package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// ProcessPendingSyncUseCase is the scheduled sweep that pushes unsynced
// tickets to HubSoft. Each ticket gets one attempt per run; a failed push is
// simply retried on the next run, so no retry state is kept.
type ProcessPendingSyncUseCase struct {
	ticketRepo ticket.TicketRepository
	gateway    HubSoftGateway
	batchSize  int
	logger     logger.Interface
}

func NewProcessPendingSyncUseCase(
	ticketRepo ticket.TicketRepository,
	gateway HubSoftGateway,
	batchSize int,
	logger logger.Interface,
) *ProcessPendingSyncUseCase {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &ProcessPendingSyncUseCase{
		ticketRepo: ticketRepo,
		gateway:    gateway,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// Execute syncs pending tickets and returns how many succeeded.
func (uc *ProcessPendingSyncUseCase) Execute(ctx context.Context) (int, error) {
	pending, err := uc.ticketRepo.FindPendingSync(ctx, uc.batchSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets pending sync", "error", err)
		return 0, err
	}

	processed := 0
	for _, t := range pending {
		externalID, err := uc.gateway.CreateServiceOrder(ctx, t)
		if err != nil {
			uc.logger.Warnw("hubsoft push failed, will retry next run", "error", err, "protocol", t.Protocol())
			continue
		}

		if err := t.SyncWithHubSoft(externalID); err != nil {
			uc.logger.Warnw("skipping ticket", "error", err, "protocol", t.Protocol())
			continue
		}

		if err := uc.ticketRepo.UpdateSyncStatus(ctx, t.ID(), externalID); err != nil {
			uc.logger.Errorw("failed to persist sync status", "error", err, "ticket_id", t.ID(), "hubsoft_id", externalID)
			continue
		}

		processed++
	}

	if processed > 0 {
		uc.logger.Infow("synced pending tickets", "count", processed)
	}

	return processed, nil
}
