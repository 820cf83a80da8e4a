package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// AddTicketAttachmentCommand appends supporting evidence to an existing
// ticket, for users sending extra screenshots after the ticket was opened.
type AddTicketAttachmentCommand struct {
	Protocol     string
	FileID       string
	FileUniqueID string
	FileName     string
	MimeType     string
	FileSize     int64
}

type AddTicketAttachmentResult struct {
	Ticket *TicketDTO
}

type AddTicketAttachmentUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewAddTicketAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *AddTicketAttachmentUseCase {
	return &AddTicketAttachmentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AddTicketAttachmentUseCase) Execute(ctx context.Context, cmd AddTicketAttachmentCommand) (*AddTicketAttachmentResult, error) {
	if cmd.Protocol == "" {
		return nil, errors.NewValidationError("protocol is required")
	}

	att, err := vo.NewAttachment(cmd.FileID, cmd.FileUniqueID, cmd.FileName, cmd.MimeType, cmd.FileSize)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByProtocol(ctx, cmd.Protocol)
	if err != nil {
		return nil, mapTicketError(err)
	}

	if t.Status().IsTerminal() {
		return nil, errors.NewInvalidStateError("ticket is already finished")
	}

	if err := t.AddAttachment(att); err != nil {
		uc.logger.Warnw("attachment rejected", "error", err, "protocol", cmd.Protocol)
		return nil, mapTicketError(err)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "protocol", cmd.Protocol)
		return nil, err
	}

	return &AddTicketAttachmentResult{Ticket: ticketToDTO(t)}, nil
}
