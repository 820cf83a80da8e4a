package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type SetDescriptionCommand struct {
	TelegramUserID int64
	Description    string
}

type SetDescriptionResult struct {
	Conversation *ConversationDTO
}

type SetDescriptionUseCase struct {
	convRepo conversation.ConversationRepository
	guard    ConversationGuard
	logger   logger.Interface
}

func NewSetDescriptionUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	logger logger.Interface,
) *SetDescriptionUseCase {
	return &SetDescriptionUseCase{
		convRepo: convRepo,
		guard:    guard,
		logger:   logger,
	}
}

func (uc *SetDescriptionUseCase) Execute(ctx context.Context, cmd SetDescriptionCommand) (*SetDescriptionResult, error) {
	if cmd.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	if err != nil {
		return nil, mapConversationError(err)
	}

	if err := conv.SetDescription(cmd.Description); err != nil {
		uc.logger.Warnw("description rejected", "error", err, "telegram_user_id", cmd.TelegramUserID)
		return nil, mapConversationError(err)
	}

	if err := uc.convRepo.Update(ctx, conv); err != nil {
		uc.logger.Errorw("failed to update conversation", "error", err, "conversation_id", conv.ID())
		return nil, err
	}

	if err := uc.guard.Refresh(ctx, cmd.TelegramUserID); err != nil {
		uc.logger.Warnw("failed to refresh conversation guard", "error", err, "telegram_user_id", cmd.TelegramUserID)
	}

	return &SetDescriptionResult{Conversation: conversationToDTO(conv)}, nil
}
