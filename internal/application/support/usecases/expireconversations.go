package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// ExpireConversationsUseCase is the scheduled sweep that deactivates
// conversations whose inactivity window elapsed. Each conversation is handled
// independently; a version conflict means the user acted after the sweep
// loaded the row, and that conversation is simply skipped.
type ExpireConversationsUseCase struct {
	convRepo       conversation.ConversationRepository
	guard          ConversationGuard
	dispatcher     events.EventDispatcher
	timeoutMinutes int
	logger         logger.Interface
}

func NewExpireConversationsUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	dispatcher events.EventDispatcher,
	timeoutMinutes int,
	logger logger.Interface,
) *ExpireConversationsUseCase {
	return &ExpireConversationsUseCase{
		convRepo:       convRepo,
		guard:          guard,
		dispatcher:     dispatcher,
		timeoutMinutes: timeoutMinutes,
		logger:         logger,
	}
}

// Execute expires stale conversations and returns how many were deactivated.
func (uc *ExpireConversationsUseCase) Execute(ctx context.Context) (int, error) {
	expired, err := uc.convRepo.FindExpired(ctx, uc.timeoutMinutes)
	if err != nil {
		uc.logger.Errorw("failed to list expired conversations", "error", err)
		return 0, err
	}

	processed := 0
	for _, conv := range expired {
		if err := conv.Expire(); err != nil {
			uc.logger.Warnw("skipping conversation", "error", err, "conversation_id", conv.ID())
			continue
		}

		if err := uc.convRepo.Update(ctx, conv); err != nil {
			uc.logger.Warnw("failed to expire conversation, user may have acted concurrently",
				"error", err, "conversation_id", conv.ID())
			continue
		}

		if err := uc.guard.Release(ctx, conv.TelegramUserID()); err != nil {
			uc.logger.Warnw("failed to release conversation guard", "error", err, "telegram_user_id", conv.TelegramUserID())
		}

		for _, event := range conv.PullEvents() {
			if err := uc.dispatcher.Publish(event); err != nil {
				uc.logger.Warnw("failed to publish event", "event_type", event.GetEventType(), "error", err)
			}
		}

		processed++
	}

	if processed > 0 {
		uc.logger.Infow("expired stale conversations", "count", processed)
	}

	return processed, nil
}
