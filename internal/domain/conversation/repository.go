package conversation

import "context"

// ConversationRepository is the persistence contract for support
// conversations. Implementations must make Update a conditional write on the
// aggregate version: a user action and the expiry sweep racing on the same
// conversation must not both win.
type ConversationRepository interface {
	Save(ctx context.Context, c *SupportConversation) error
	Update(ctx context.Context, c *SupportConversation) error
	FindByID(ctx context.Context, id uint) (*SupportConversation, error)
	// FindActiveByUser returns the single active conversation for the user,
	// or ErrConversationNotFound.
	FindActiveByUser(ctx context.Context, telegramUserID int64) (*SupportConversation, error)
	// FindExpired returns active conversations whose last activity is older
	// than timeoutMinutes.
	FindExpired(ctx context.Context, timeoutMinutes int) ([]*SupportConversation, error)
	// DeactivateUserConversations force-deactivates every active conversation
	// of the user and reports how many rows changed.
	DeactivateUserConversations(ctx context.Context, telegramUserID int64) (int64, error)
	// CleanupOldConversations deletes finished conversations older than
	// daysOld and reports how many rows were removed. Active conversations
	// are never touched.
	CleanupOldConversations(ctx context.Context, daysOld int) (int64, error)
}
