package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// ListTicketsQuery filters tickets by status or user. With no filter set, all
// non-terminal tickets are returned.
type ListTicketsQuery struct {
	Status         string
	TelegramUserID int64
}

type ListTicketsResult struct {
	Tickets []*TicketDTO
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	var (
		found []*ticket.Ticket
		err   error
	)

	switch {
	case query.TelegramUserID != 0:
		found, err = uc.ticketRepo.FindByUser(ctx, query.TelegramUserID)
	case query.Status != "":
		status, statusErr := vo.NewTicketStatus(query.Status)
		if statusErr != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		found, err = uc.ticketRepo.FindByStatus(ctx, status)
	default:
		found, err = uc.ticketRepo.FindActiveTickets(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]*TicketDTO, 0, len(found))
	for _, t := range found {
		dtos = append(dtos, ticketToDTO(t))
	}

	return &ListTicketsResult{Tickets: dtos}, nil
}
