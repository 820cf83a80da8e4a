package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// CleanupConversationsUseCase is the daily sweep that deletes finished
// conversations past the retention window. Tickets are never touched; only
// the form state is disposable.
type CleanupConversationsUseCase struct {
	convRepo conversation.ConversationRepository
	daysOld  int
	logger   logger.Interface
}

func NewCleanupConversationsUseCase(
	convRepo conversation.ConversationRepository,
	daysOld int,
	logger logger.Interface,
) *CleanupConversationsUseCase {
	return &CleanupConversationsUseCase{
		convRepo: convRepo,
		daysOld:  daysOld,
		logger:   logger,
	}
}

// Execute deletes old finished conversations and returns how many rows were
// removed.
func (uc *CleanupConversationsUseCase) Execute(ctx context.Context) (int, error) {
	removed, err := uc.convRepo.CleanupOldConversations(ctx, uc.daysOld)
	if err != nil {
		uc.logger.Errorw("failed to clean up conversations", "error", err)
		return 0, err
	}

	if removed > 0 {
		uc.logger.Infow("cleaned up old conversations", "count", removed, "days_old", uc.daysOld)
	}

	return int(removed), nil
}
