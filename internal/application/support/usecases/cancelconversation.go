package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type CancelConversationCommand struct {
	TelegramUserID int64
}

type CancelConversationUseCase struct {
	convRepo   conversation.ConversationRepository
	guard      ConversationGuard
	dispatcher events.EventDispatcher
	logger     logger.Interface
}

func NewCancelConversationUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *CancelConversationUseCase {
	return &CancelConversationUseCase{
		convRepo:   convRepo,
		guard:      guard,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *CancelConversationUseCase) Execute(ctx context.Context, cmd CancelConversationCommand) error {
	if cmd.TelegramUserID == 0 {
		return errors.NewValidationError("telegram user ID is required")
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	if err != nil {
		return mapConversationError(err)
	}

	if err := conv.Cancel(); err != nil {
		return mapConversationError(err)
	}

	if err := uc.convRepo.Update(ctx, conv); err != nil {
		uc.logger.Errorw("failed to update conversation", "error", err, "conversation_id", conv.ID())
		return err
	}

	if err := uc.guard.Release(ctx, cmd.TelegramUserID); err != nil {
		uc.logger.Warnw("failed to release conversation guard", "error", err, "telegram_user_id", cmd.TelegramUserID)
	}

	for _, event := range conv.PullEvents() {
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish event", "event_type", event.GetEventType(), "error", err)
		}
	}

	uc.logger.Infow("support conversation cancelled", "conversation_id", conv.ID(), "telegram_user_id", cmd.TelegramUserID)

	return nil
}
