package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type SelectGameCommand struct {
	TelegramUserID int64
	Game           string
	// CustomName carries the free-text title when Game is "other".
	CustomName string
}

type SelectGameResult struct {
	Conversation *ConversationDTO
}

type SelectGameUseCase struct {
	convRepo conversation.ConversationRepository
	guard    ConversationGuard
	logger   logger.Interface
}

func NewSelectGameUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	logger logger.Interface,
) *SelectGameUseCase {
	return &SelectGameUseCase{
		convRepo: convRepo,
		guard:    guard,
		logger:   logger,
	}
}

func (uc *SelectGameUseCase) Execute(ctx context.Context, cmd SelectGameCommand) (*SelectGameResult, error) {
	if cmd.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	if err != nil {
		return nil, mapConversationError(err)
	}

	if err := conv.SelectGame(cmd.Game, cmd.CustomName); err != nil {
		uc.logger.Warnw("game selection rejected", "error", err, "telegram_user_id", cmd.TelegramUserID, "game", cmd.Game)
		return nil, mapConversationError(err)
	}

	if err := uc.convRepo.Update(ctx, conv); err != nil {
		uc.logger.Errorw("failed to update conversation", "error", err, "conversation_id", conv.ID())
		return nil, err
	}

	if err := uc.guard.Refresh(ctx, cmd.TelegramUserID); err != nil {
		uc.logger.Warnw("failed to refresh conversation guard", "error", err, "telegram_user_id", cmd.TelegramUserID)
	}

	return &SelectGameResult{Conversation: conversationToDTO(conv)}, nil
}
