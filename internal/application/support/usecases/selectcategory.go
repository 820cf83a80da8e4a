package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type SelectCategoryCommand struct {
	TelegramUserID int64
	Category       string
}

type SelectCategoryResult struct {
	Conversation *ConversationDTO
}

type SelectCategoryUseCase struct {
	convRepo conversation.ConversationRepository
	guard    ConversationGuard
	logger   logger.Interface
}

func NewSelectCategoryUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	logger logger.Interface,
) *SelectCategoryUseCase {
	return &SelectCategoryUseCase{
		convRepo: convRepo,
		guard:    guard,
		logger:   logger,
	}
}

func (uc *SelectCategoryUseCase) Execute(ctx context.Context, cmd SelectCategoryCommand) (*SelectCategoryResult, error) {
	if cmd.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	if err != nil {
		return nil, mapConversationError(err)
	}

	if err := conv.SelectCategory(cmd.Category); err != nil {
		uc.logger.Warnw("category selection rejected", "error", err, "telegram_user_id", cmd.TelegramUserID, "category", cmd.Category)
		return nil, mapConversationError(err)
	}

	if err := uc.convRepo.Update(ctx, conv); err != nil {
		uc.logger.Errorw("failed to update conversation", "error", err, "conversation_id", conv.ID())
		return nil, err
	}

	if err := uc.guard.Refresh(ctx, cmd.TelegramUserID); err != nil {
		uc.logger.Warnw("failed to refresh conversation guard", "error", err, "telegram_user_id", cmd.TelegramUserID)
	}

	return &SelectCategoryResult{Conversation: conversationToDTO(conv)}, nil
}
