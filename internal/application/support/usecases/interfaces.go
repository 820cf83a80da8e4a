package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/ticket"
)

// ConversationGuard serializes conversation starts per user. Acquire wins at
// most once per user until Release; a crashed process is covered by the
// guard's TTL, after which the expiry sweep reconciles the database state.
type ConversationGuard interface {
	Acquire(ctx context.Context, telegramUserID int64) (bool, error)
	Release(ctx context.Context, telegramUserID int64) error
	// Refresh extends the guard TTL on user activity.
	Refresh(ctx context.Context, telegramUserID int64) error
}

// TicketNotifier pushes ticket lifecycle notifications to the support group
// and to the requesting user.
type TicketNotifier interface {
	NotifyTicketCreated(ctx context.Context, t *ticket.Ticket) error
}
