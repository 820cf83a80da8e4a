package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type SelectTimingCommand struct {
	TelegramUserID int64
	Timing         string
}

type SelectTimingResult struct {
	Conversation *ConversationDTO
}

type SelectTimingUseCase struct {
	convRepo conversation.ConversationRepository
	guard    ConversationGuard
	logger   logger.Interface
}

func NewSelectTimingUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	logger logger.Interface,
) *SelectTimingUseCase {
	return &SelectTimingUseCase{
		convRepo: convRepo,
		guard:    guard,
		logger:   logger,
	}
}

func (uc *SelectTimingUseCase) Execute(ctx context.Context, cmd SelectTimingCommand) (*SelectTimingResult, error) {
	if cmd.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	if err != nil {
		return nil, mapConversationError(err)
	}

	if err := conv.SelectTiming(cmd.Timing); err != nil {
		uc.logger.Warnw("timing selection rejected", "error", err, "telegram_user_id", cmd.TelegramUserID, "timing", cmd.Timing)
		return nil, mapConversationError(err)
	}

	if err := uc.convRepo.Update(ctx, conv); err != nil {
		uc.logger.Errorw("failed to update conversation", "error", err, "conversation_id", conv.ID())
		return nil, err
	}

	if err := uc.guard.Refresh(ctx, cmd.TelegramUserID); err != nil {
		uc.logger.Warnw("failed to refresh conversation guard", "error", err, "telegram_user_id", cmd.TelegramUserID)
	}

	return &SelectTimingResult{Conversation: conversationToDTO(conv)}, nil
}
