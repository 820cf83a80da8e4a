package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc          func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByProtocolFunc    func(ctx context.Context, protocol string) (*ticket.Ticket, error)
	FindByUserFunc        func(ctx context.Context, telegramUserID int64) ([]*ticket.Ticket, error)
	FindByStatusFunc      func(ctx context.Context, status vo.TicketStatus) ([]*ticket.Ticket, error)
	FindActiveTicketsFunc func(ctx context.Context) ([]*ticket.Ticket, error)
	FindByHubSoftIDFunc   func(ctx context.Context, hubsoftID string) (*ticket.Ticket, error)
	FindPendingSyncFunc   func(ctx context.Context, limit int) ([]*ticket.Ticket, error)
	CountActiveByUserFunc func(ctx context.Context, telegramUserID int64) (int64, error)
	UpdateSyncStatusFunc  func(ctx context.Context, ticketID uint, hubsoftID string) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) FindByProtocol(ctx context.Context, protocol string) (*ticket.Ticket, error) {
	if m.FindByProtocolFunc != nil {
		return m.FindByProtocolFunc(ctx, protocol)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) FindByUser(ctx context.Context, telegramUserID int64) ([]*ticket.Ticket, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, telegramUserID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByStatus(ctx context.Context, status vo.TicketStatus) ([]*ticket.Ticket, error) {
	if m.FindByStatusFunc != nil {
		return m.FindByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindActiveTickets(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.FindActiveTicketsFunc != nil {
		return m.FindActiveTicketsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByHubSoftID(ctx context.Context, hubsoftID string) (*ticket.Ticket, error) {
	if m.FindByHubSoftIDFunc != nil {
		return m.FindByHubSoftIDFunc(ctx, hubsoftID)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) FindPendingSync(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	if m.FindPendingSyncFunc != nil {
		return m.FindPendingSyncFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountActiveByUser(ctx context.Context, telegramUserID int64) (int64, error) {
	if m.CountActiveByUserFunc != nil {
		return m.CountActiveByUserFunc(ctx, telegramUserID)
	}
	return 0, nil
}

func (m *mockTicketRepository) UpdateSyncStatus(ctx context.Context, ticketID uint, hubsoftID string) error {
	if m.UpdateSyncStatusFunc != nil {
		return m.UpdateSyncStatusFunc(ctx, ticketID, hubsoftID)
	}
	return nil
}

type mockHubSoftGateway struct {
	CreateServiceOrderFunc func(ctx context.Context, t *ticket.Ticket) (string, error)
}

func (m *mockHubSoftGateway) CreateServiceOrder(ctx context.Context, t *ticket.Ticket) (string, error) {
	if m.CreateServiceOrderFunc != nil {
		return m.CreateServiceOrderFunc(ctx, t)
	}
	return "OS-0001", nil
}

type mockStatusNotifier struct {
	NotifyStatusChangedFunc func(ctx context.Context, t *ticket.Ticket, oldStatus string) error
}

func (m *mockStatusNotifier) NotifyStatusChanged(ctx context.Context, t *ticket.Ticket, oldStatus string) error {
	if m.NotifyStatusChangedFunc != nil {
		return m.NotifyStatusChangedFunc(ctx, t, oldStatus)
	}
	return nil
}

type mockEventDispatcher struct {
	PublishFunc func(event events.DomainEvent) error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	for _, event := range evts {
		if err := m.Publish(event); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Unsubscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Start() error {
	return nil
}

func (m *mockEventDispatcher) Stop() error {
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
