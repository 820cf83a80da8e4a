package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	apperrors "github.com/oncabito/sentinela/internal/shared/errors"
)

func pendingTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()

	game, err := vo.NewGameTitle(vo.GameCS2, "")
	require.NoError(t, err)

	tk, err := ticket.NewTicket(
		"LOC000000042",
		555,
		vo.CategoryPerformance,
		game,
		vo.TimingYesterday,
		"Ping subiu para 200ms desde ontem",
		vo.ClassifyUrgency(vo.CategoryPerformance, vo.TimingYesterday),
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	tk.PullEvents()
	return tk
}

func TestAssignTicketUseCase_Execute_Success(t *testing.T) {
	existing := pendingTicket(t, 1)

	var updated *ticket.Ticket
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			assert.Equal(t, uint(1), id)
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}

	var notifiedOld string
	notifier := &mockStatusNotifier{
		NotifyStatusChangedFunc: func(ctx context.Context, tk *ticket.Ticket, oldStatus string) error {
			notifiedOld = oldStatus
			return nil
		},
	}

	useCase := NewAssignTicketUseCase(repo, &mockEventDispatcher{}, notifier, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AssignTicketCommand{TicketID: 1, TechnicianID: 9})
	require.NoError(t, err)

	assert.Equal(t, "in_progress", result.Ticket.Status)
	require.NotNil(t, result.Ticket.AssigneeID)
	assert.Equal(t, uint(9), *result.Ticket.AssigneeID)
	require.NotNil(t, updated)
	assert.Equal(t, "pending", notifiedOld)
}

func TestAssignTicketUseCase_Execute_InvalidTransition(t *testing.T) {
	existing := pendingTicket(t, 1)
	require.NoError(t, existing.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, existing.ChangeStatus(vo.StatusResolved))

	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("rejected assignment must not be persisted")
			return nil
		},
	}

	useCase := NewAssignTicketUseCase(repo, &mockEventDispatcher{}, &mockStatusNotifier{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), AssignTicketCommand{TicketID: 1, TechnicianID: 9})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransitionError(err))
}

func TestAssignTicketUseCase_Execute_NotFound(t *testing.T) {
	useCase := NewAssignTicketUseCase(&mockTicketRepository{}, &mockEventDispatcher{}, &mockStatusNotifier{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), AssignTicketCommand{TicketID: 404, TechnicianID: 9})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAssignTicketUseCase_Execute_Validation(t *testing.T) {
	useCase := NewAssignTicketUseCase(&mockTicketRepository{}, &mockEventDispatcher{}, &mockStatusNotifier{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), AssignTicketCommand{TechnicianID: 9})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = useCase.Execute(context.Background(), AssignTicketCommand{TicketID: 1})
	assert.True(t, apperrors.IsValidationError(err))
}
