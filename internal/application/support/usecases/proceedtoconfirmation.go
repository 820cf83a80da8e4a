package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type ProceedToConfirmationCommand struct {
	TelegramUserID int64
}

type ProceedToConfirmationResult struct {
	Conversation *ConversationDTO
}

type ProceedToConfirmationUseCase struct {
	convRepo conversation.ConversationRepository
	guard    ConversationGuard
	logger   logger.Interface
}

func NewProceedToConfirmationUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	logger logger.Interface,
) *ProceedToConfirmationUseCase {
	return &ProceedToConfirmationUseCase{
		convRepo: convRepo,
		guard:    guard,
		logger:   logger,
	}
}

func (uc *ProceedToConfirmationUseCase) Execute(ctx context.Context, cmd ProceedToConfirmationCommand) (*ProceedToConfirmationResult, error) {
	if cmd.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	if err != nil {
		return nil, mapConversationError(err)
	}

	if err := conv.ProceedToConfirmation(); err != nil {
		uc.logger.Warnw("proceed to confirmation rejected", "error", err, "telegram_user_id", cmd.TelegramUserID)
		return nil, mapConversationError(err)
	}

	if err := uc.convRepo.Update(ctx, conv); err != nil {
		uc.logger.Errorw("failed to update conversation", "error", err, "conversation_id", conv.ID())
		return nil, err
	}

	if err := uc.guard.Refresh(ctx, cmd.TelegramUserID); err != nil {
		uc.logger.Warnw("failed to refresh conversation guard", "error", err, "telegram_user_id", cmd.TelegramUserID)
	}

	return &ProceedToConfirmationResult{Conversation: conversationToDTO(conv)}, nil
}
