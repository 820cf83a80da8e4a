package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// GetTicketQuery resolves a ticket by database id or by protocol; exactly one
// selector must be set.
type GetTicketQuery struct {
	TicketID uint
	Protocol string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error) {
	if query.TicketID == 0 && query.Protocol == "" {
		return nil, errors.NewValidationError("ticket ID or protocol is required")
	}

	var (
		found *ticket.Ticket
		err   error
	)
	if query.TicketID != 0 {
		found, err = uc.ticketRepo.FindByID(ctx, query.TicketID)
	} else {
		found, err = uc.ticketRepo.FindByProtocol(ctx, query.Protocol)
	}
	if err != nil {
		return nil, mapTicketError(err)
	}

	return ticketToDTO(found), nil
}
