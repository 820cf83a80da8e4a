package usecases

import (
	"context"
	"time"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type ConfirmTicketCommand struct {
	TelegramUserID int64
}

type ConfirmTicketResult struct {
	TicketID  uint
	Protocol  string
	Urgency   string
	Status    string
	CreatedAt time.Time
}

// ConfirmTicketUseCase turns a conversation at the CONFIRMATION step into a
// ticket. Urgency is derived here, not chosen by the user.
type ConfirmTicketUseCase struct {
	convRepo    conversation.ConversationRepository
	ticketRepo  ticket.TicketRepository
	protocolGen ticket.ProtocolGenerator
	guard       ConversationGuard
	dispatcher  events.EventDispatcher
	notifier    TicketNotifier
	logger      logger.Interface
}

func NewConfirmTicketUseCase(
	convRepo conversation.ConversationRepository,
	ticketRepo ticket.TicketRepository,
	protocolGen ticket.ProtocolGenerator,
	guard ConversationGuard,
	dispatcher events.EventDispatcher,
	notifier TicketNotifier,
	logger logger.Interface,
) *ConfirmTicketUseCase {
	return &ConfirmTicketUseCase{
		convRepo:    convRepo,
		ticketRepo:  ticketRepo,
		protocolGen: protocolGen,
		guard:       guard,
		dispatcher:  dispatcher,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ConfirmTicketUseCase) Execute(ctx context.Context, cmd ConfirmTicketCommand) (*ConfirmTicketResult, error) {
	if cmd.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	if err != nil {
		return nil, mapConversationError(err)
	}

	// Complete validates both the step and the form completeness before any
	// ticket exists.
	if err := conv.Complete(); err != nil {
		uc.logger.Warnw("ticket confirmation rejected", "error", err, "telegram_user_id", cmd.TelegramUserID)
		return nil, mapConversationError(err)
	}

	protocol, err := uc.protocolGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate protocol", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	category := *conv.Category()
	timing := *conv.Timing()
	urgency := vo.ClassifyUrgency(category, timing)

	newTicket, err := ticket.NewTicket(
		protocol,
		cmd.TelegramUserID,
		category,
		*conv.Game(),
		timing,
		conv.Description(),
		urgency,
		conv.Attachments(),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "protocol", protocol)
		return nil, err
	}

	if err := uc.convRepo.Update(ctx, conv); err != nil {
		// The ticket exists; losing the conversation completion only risks
		// the expiry sweep touching an already-finished row.
		uc.logger.Errorw("failed to mark conversation completed", "error", err, "conversation_id", conv.ID())
	}

	if err := uc.guard.Release(ctx, cmd.TelegramUserID); err != nil {
		uc.logger.Warnw("failed to release conversation guard", "error", err, "telegram_user_id", cmd.TelegramUserID)
	}

	uc.publishEvents(conv.PullEvents())
	uc.publishEvents(newTicket.PullEvents())

	if err := uc.notifier.NotifyTicketCreated(ctx, newTicket); err != nil {
		uc.logger.Warnw("failed to notify support group", "error", err, "protocol", protocol)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"protocol", protocol,
		"urgency", urgency.String(),
		"telegram_user_id", cmd.TelegramUserID,
	)

	return &ConfirmTicketResult{
		TicketID:  newTicket.ID(),
		Protocol:  newTicket.Protocol(),
		Urgency:   newTicket.Urgency().String(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *ConfirmTicketUseCase) publishEvents(evts []events.DomainEvent) {
	for _, event := range evts {
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish event", "event_type", event.GetEventType(), "error", err)
		}
	}
}
