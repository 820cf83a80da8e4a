package usecases

import (
	"context"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

type mockConversationRepository struct {
	SaveFunc                        func(ctx context.Context, c *conversation.SupportConversation) error
	UpdateFunc                      func(ctx context.Context, c *conversation.SupportConversation) error
	FindByIDFunc                    func(ctx context.Context, id uint) (*conversation.SupportConversation, error)
	FindActiveByUserFunc            func(ctx context.Context, telegramUserID int64) (*conversation.SupportConversation, error)
	FindExpiredFunc                 func(ctx context.Context, timeoutMinutes int) ([]*conversation.SupportConversation, error)
	DeactivateUserConversationsFunc func(ctx context.Context, telegramUserID int64) (int64, error)
	CleanupOldConversationsFunc     func(ctx context.Context, daysOld int) (int64, error)
}

func (m *mockConversationRepository) Save(ctx context.Context, c *conversation.SupportConversation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockConversationRepository) Update(ctx context.Context, c *conversation.SupportConversation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockConversationRepository) FindByID(ctx context.Context, id uint) (*conversation.SupportConversation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, conversation.ErrConversationNotFound
}

func (m *mockConversationRepository) FindActiveByUser(ctx context.Context, telegramUserID int64) (*conversation.SupportConversation, error) {
	if m.FindActiveByUserFunc != nil {
		return m.FindActiveByUserFunc(ctx, telegramUserID)
	}
	return nil, conversation.ErrConversationNotFound
}

func (m *mockConversationRepository) FindExpired(ctx context.Context, timeoutMinutes int) ([]*conversation.SupportConversation, error) {
	if m.FindExpiredFunc != nil {
		return m.FindExpiredFunc(ctx, timeoutMinutes)
	}
	return nil, nil
}

func (m *mockConversationRepository) DeactivateUserConversations(ctx context.Context, telegramUserID int64) (int64, error) {
	if m.DeactivateUserConversationsFunc != nil {
		return m.DeactivateUserConversationsFunc(ctx, telegramUserID)
	}
	return 0, nil
}

func (m *mockConversationRepository) CleanupOldConversations(ctx context.Context, daysOld int) (int64, error) {
	if m.CleanupOldConversationsFunc != nil {
		return m.CleanupOldConversationsFunc(ctx, daysOld)
	}
	return 0, nil
}

type mockTicketRepository struct {
	SaveFunc func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) FindByProtocol(ctx context.Context, protocol string) (*ticket.Ticket, error) {
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) FindByUser(ctx context.Context, telegramUserID int64) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) FindByStatus(ctx context.Context, status vo.TicketStatus) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) FindActiveTickets(ctx context.Context) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) FindByHubSoftID(ctx context.Context, hubsoftID string) (*ticket.Ticket, error) {
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) FindPendingSync(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) CountActiveByUser(ctx context.Context, telegramUserID int64) (int64, error) {
	return 0, nil
}

func (m *mockTicketRepository) UpdateSyncStatus(ctx context.Context, ticketID uint, hubsoftID string) error {
	return nil
}

type mockProtocolGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockProtocolGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "LOC000000001", nil
}

type mockConversationGuard struct {
	AcquireFunc func(ctx context.Context, telegramUserID int64) (bool, error)
	ReleaseFunc func(ctx context.Context, telegramUserID int64) error
	RefreshFunc func(ctx context.Context, telegramUserID int64) error
}

func (m *mockConversationGuard) Acquire(ctx context.Context, telegramUserID int64) (bool, error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, telegramUserID)
	}
	return true, nil
}

func (m *mockConversationGuard) Release(ctx context.Context, telegramUserID int64) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, telegramUserID)
	}
	return nil
}

func (m *mockConversationGuard) Refresh(ctx context.Context, telegramUserID int64) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, telegramUserID)
	}
	return nil
}

type mockTicketNotifier struct {
	NotifyTicketCreatedFunc func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketNotifier) NotifyTicketCreated(ctx context.Context, t *ticket.Ticket) error {
	if m.NotifyTicketCreatedFunc != nil {
		return m.NotifyTicketCreatedFunc(ctx, t)
	}
	return nil
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
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

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}
