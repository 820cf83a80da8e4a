package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type AddAttachmentCommand struct {
	TelegramUserID int64
	FileID         string
	FileUniqueID   string
	FileName       string
	MimeType       string
	FileSize       int64
}

type AddAttachmentResult struct {
	Conversation *ConversationDTO
	// Remaining is how many more attachments the conversation accepts.
	Remaining int
}

type AddAttachmentUseCase struct {
	convRepo conversation.ConversationRepository
	guard    ConversationGuard
	logger   logger.Interface
}

func NewAddAttachmentUseCase(
	convRepo conversation.ConversationRepository,
	guard ConversationGuard,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		convRepo: convRepo,
		guard:    guard,
		logger:   logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	if cmd.TelegramUserID == 0 {
		return nil, errors.NewValidationError("telegram user ID is required")
	}

	att, err := vo.NewAttachment(cmd.FileID, cmd.FileUniqueID, cmd.FileName, cmd.MimeType, cmd.FileSize)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	conv, err := uc.convRepo.FindActiveByUser(ctx, cmd.TelegramUserID)
	if err != nil {
		return nil, mapConversationError(err)
	}

	if err := conv.AddAttachment(att); err != nil {
		uc.logger.Warnw("attachment rejected", "error", err, "telegram_user_id", cmd.TelegramUserID)
		return nil, mapConversationError(err)
	}

	if err := uc.convRepo.Update(ctx, conv); err != nil {
		uc.logger.Errorw("failed to update conversation", "error", err, "conversation_id", conv.ID())
		return nil, err
	}

	if err := uc.guard.Refresh(ctx, cmd.TelegramUserID); err != nil {
		uc.logger.Warnw("failed to refresh conversation guard", "error", err, "telegram_user_id", cmd.TelegramUserID)
	}

	return &AddAttachmentResult{
		Conversation: conversationToDTO(conv),
		Remaining:    vo.MaxAttachments - len(conv.Attachments()),
	}, nil
}
