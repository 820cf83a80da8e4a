package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	apperrors "github.com/oncabito/sentinela/internal/shared/errors"
)

// conversationAtConfirmation drives a fresh conversation through every step
// up to CONFIRMATION.
func conversationAtConfirmation(t *testing.T, userID int64) *conversation.SupportConversation {
	t.Helper()

	conv := activeConversation(t, userID)
	require.NoError(t, conv.SelectCategory("connectivity"))
	require.NoError(t, conv.SelectGame("valorant", ""))
	require.NoError(t, conv.SelectTiming("now"))
	require.NoError(t, conv.SetDescription("Quedas de conexão a cada cinco minutos"))
	require.NoError(t, conv.ProceedToConfirmation())
	return conv
}

func TestConfirmTicketUseCase_Execute_Success(t *testing.T) {
	userID := int64(222)
	conv := conversationAtConfirmation(t, userID)

	convRepo := &mockConversationRepository{
		FindActiveByUserFunc: func(ctx context.Context, id int64) (*conversation.SupportConversation, error) {
			return conv, nil
		},
	}

	var savedTicket *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTicket = tk
			return tk.SetID(7)
		},
	}

	released := false
	guard := &mockConversationGuard{
		ReleaseFunc: func(ctx context.Context, id int64) error {
			released = true
			return nil
		},
	}

	notified := false
	notifier := &mockTicketNotifier{
		NotifyTicketCreatedFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			notified = true
			return nil
		},
	}

	useCase := NewConfirmTicketUseCase(
		convRepo, ticketRepo, &mockProtocolGenerator{}, guard, &mockEventDispatcher{}, notifier, &mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), ConfirmTicketCommand{TelegramUserID: userID})
	require.NoError(t, err)

	assert.Equal(t, uint(7), result.TicketID)
	assert.Equal(t, "LOC000000001", result.Protocol)
	assert.Equal(t, "high", result.Urgency, "connectivity happening now classifies as high")
	assert.Equal(t, "pending", result.Status)

	require.NotNil(t, savedTicket)
	assert.Equal(t, userID, savedTicket.TelegramUserID())
	assert.Equal(t, conversation.StatusCompleted, conv.Status())
	assert.True(t, released)
	assert.True(t, notified)
}

func TestConfirmTicketUseCase_Execute_WrongStep(t *testing.T) {
	userID := int64(222)
	conv := activeConversation(t, userID)

	convRepo := &mockConversationRepository{
		FindActiveByUserFunc: func(ctx context.Context, id int64) (*conversation.SupportConversation, error) {
			return conv, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("no ticket should be saved")
			return nil
		},
	}

	useCase := NewConfirmTicketUseCase(
		convRepo, ticketRepo, &mockProtocolGenerator{}, &mockConversationGuard{}, &mockEventDispatcher{}, &mockTicketNotifier{}, &mockLogger{},
	)

	_, err := useCase.Execute(context.Background(), ConfirmTicketCommand{TelegramUserID: userID})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidStateError(err))
}

func TestConfirmTicketUseCase_Execute_NoActiveConversation(t *testing.T) {
	useCase := NewConfirmTicketUseCase(
		&mockConversationRepository{}, &mockTicketRepository{}, &mockProtocolGenerator{},
		&mockConversationGuard{}, &mockEventDispatcher{}, &mockTicketNotifier{}, &mockLogger{},
	)

	_, err := useCase.Execute(context.Background(), ConfirmTicketCommand{TelegramUserID: 222})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestConfirmTicketUseCase_Execute_ProtocolFailure(t *testing.T) {
	userID := int64(222)
	conv := conversationAtConfirmation(t, userID)

	convRepo := &mockConversationRepository{
		FindActiveByUserFunc: func(ctx context.Context, id int64) (*conversation.SupportConversation, error) {
			return conv, nil
		},
	}
	gen := &mockProtocolGenerator{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("entropy exhausted")
		},
	}

	useCase := NewConfirmTicketUseCase(
		convRepo, &mockTicketRepository{}, gen, &mockConversationGuard{}, &mockEventDispatcher{}, &mockTicketNotifier{}, &mockLogger{},
	)

	_, err := useCase.Execute(context.Background(), ConfirmTicketCommand{TelegramUserID: userID})
	require.Error(t, err)
}

func TestConfirmTicketUseCase_Execute_NotifierFailureIsNotFatal(t *testing.T) {
	userID := int64(222)
	conv := conversationAtConfirmation(t, userID)

	convRepo := &mockConversationRepository{
		FindActiveByUserFunc: func(ctx context.Context, id int64) (*conversation.SupportConversation, error) {
			return conv, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(8)
		},
	}
	notifier := &mockTicketNotifier{
		NotifyTicketCreatedFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.New("telegram unavailable")
		},
	}

	useCase := NewConfirmTicketUseCase(
		convRepo, ticketRepo, &mockProtocolGenerator{}, &mockConversationGuard{}, &mockEventDispatcher{}, notifier, &mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), ConfirmTicketCommand{TelegramUserID: userID})
	require.NoError(t, err, "notification failure must not fail ticket creation")
	assert.Equal(t, uint(8), result.TicketID)
}
