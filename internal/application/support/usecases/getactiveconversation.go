package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type GetActiveConversationQuery struct {
	TelegramUserID int64
}

type GetActiveConversationUseCase struct {
	convRepo conversation.ConversationRepository
	logger   logger.Interface
}

func NewGetActiveConversationUseCase(
	convRepo conversation.ConversationRepository,
	logger logger.Interface,
) *GetActiveConversationUseCase {
	return &GetActiveConversationUseCase{
		convRepo: convRepo,
		logger:   logger,
	}
}

func (uc *GetActiveConversationUseCase) Execute(ctx context.Context, query GetActiveConversationQuery) (*ConversationDTO, error) {
	if query.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, query.TelegramUserID)
	if err != nil {
		return nil, mapConversationError(err)
	}

	return conversationToDTO(conv), nil
}
