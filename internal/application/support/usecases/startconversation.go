package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type StartConversationCommand struct {
	TelegramUserID int64
}

type StartConversationResult struct {
	Conversation *ConversationDTO
}

// StartConversationUseCase opens the support form for a user. The database is
// the source of truth for an existing active conversation; the guard only
// serializes concurrent starts so two /suporte taps cannot both insert.
type StartConversationUseCase struct {
	convRepo   conversation.ConversationRepository
	guard      ConversationGuard
	dispatcher events.EventDispatcher
	timeout    time.Duration
	logger     logger.Interface
}

func NewStartConversationUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	dispatcher events.EventDispatcher,
	timeout time.Duration,
	logger logger.Interface,
) *StartConversationUseCase {
	return &StartConversationUseCase{
		convRepo:   convRepo,
		guard:      guard,
		dispatcher: dispatcher,
		timeout:    timeout,
		logger:     logger,
	}
}

func (uc *StartConversationUseCase) Execute(ctx context.Context, cmd StartConversationCommand) (*StartConversationResult, error) {
	if cmd.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	uc.logger.Infow("starting support conversation", "telegram_user_id", cmd.TelegramUserID)

	existing, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	switch {
	case err == nil && (uc.timeout <= 0 || !existing.IsExpired(uc.timeout)):
		return nil, errors.NewConflictError("an active conversation already exists for this user")
	case err == nil:
		// Stale active row the expiry sweep has not collected yet.
		// Deactivate it and open a fresh conversation below.
		count, derr := uc.convRepo.DeactivateUserConversations(ctx, cmd.TelegramUserID)
		if derr != nil {
			uc.logger.Errorw("failed to deactivate stale conversation", "error", derr, "telegram_user_id", cmd.TelegramUserID)
			return nil, errors.NewInternalError("failed to start conversation")
		}
		uc.logger.Infow("replaced stale conversation", "telegram_user_id", cmd.TelegramUserID, "deactivated", count)
		if rerr := uc.guard.Release(ctx, cmd.TelegramUserID); rerr != nil {
			uc.logger.Warnw("failed to release conversation guard", "error", rerr, "telegram_user_id", cmd.TelegramUserID)
		}
	case !stderrors.Is(err, conversation.ErrConversationNotFound):
		uc.logger.Errorw("failed to load active conversation", "error", err, "telegram_user_id", cmd.TelegramUserID)
		return nil, errors.NewInternalError("failed to start conversation")
	}

	acquired, err := uc.guard.Acquire(ctx, cmd.TelegramUserID)
	if err != nil {
		uc.logger.Errorw("conversation guard unavailable", "error", err, "telegram_user_id", cmd.TelegramUserID)
		return nil, errors.NewInternalError("failed to start conversation")
	}
	if !acquired {
		return nil, errors.NewConflictError("a conversation start is already in progress")
	}

	conv, err := conversation.NewSupportConversation(cmd.TelegramUserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.convRepo.Save(ctx, conv); err != nil {
		uc.logger.Errorw("failed to save conversation", "error", err, "telegram_user_id", cmd.TelegramUserID)
		if releaseErr := uc.guard.Release(ctx, cmd.TelegramUserID); releaseErr != nil {
			uc.logger.Warnw("failed to release conversation guard", "error", releaseErr, "telegram_user_id", cmd.TelegramUserID)
		}
		return nil, err
	}

	uc.publishEvents(conv.PullEvents())

	uc.logger.Infow("support conversation started", "conversation_id", conv.ID(), "telegram_user_id", cmd.TelegramUserID)

	return &StartConversationResult{Conversation: conversationToDTO(conv)}, nil
}

func (uc *StartConversationUseCase) publishEvents(evts []events.DomainEvent) {
	for _, event := range evts {
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish event", "event_type", event.GetEventType(), "error", err)
		}
	}
}
