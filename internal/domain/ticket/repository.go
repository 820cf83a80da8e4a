package ticket

import (
	"context"

	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
)

// TicketRepository is the persistence contract for the ticket aggregate.
// Implementations must make Update a conditional write on the aggregate
// version so concurrent mutations of the same ticket cannot interleave.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByProtocol(ctx context.Context, protocol string) (*Ticket, error)
	FindByUser(ctx context.Context, telegramUserID int64) ([]*Ticket, error)
	FindByStatus(ctx context.Context, status vo.TicketStatus) ([]*Ticket, error)
	// FindActiveTickets returns tickets in a non-terminal status.
	FindActiveTickets(ctx context.Context) ([]*Ticket, error)
	FindByHubSoftID(ctx context.Context, hubsoftID string) (*Ticket, error)
	// FindPendingSync returns non-terminal tickets that have no HubSoft id yet.
	FindPendingSync(ctx context.Context, limit int) ([]*Ticket, error)
	CountActiveByUser(ctx context.Context, telegramUserID int64) (int64, error)
	// UpdateSyncStatus persists only the sync bookkeeping columns.
	UpdateSyncStatus(ctx context.Context, ticketID uint, hubsoftID string) error
}

// ProtocolGenerator produces the human-readable code assigned to a ticket at
// creation.
type ProtocolGenerator interface {
	Generate(ctx context.Context) (string, error)
}
