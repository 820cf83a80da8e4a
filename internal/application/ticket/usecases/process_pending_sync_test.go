package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncabito/sentinela/internal/domain/ticket"
)

func TestProcessPendingSyncUseCase_Execute(t *testing.T) {
	first := pendingTicket(t, 10)
	second := pendingTicket(t, 11)

	repo := &mockTicketRepository{
		FindPendingSyncFunc: func(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
			assert.Equal(t, 20, limit)
			return []*ticket.Ticket{first, second}, nil
		},
	}

	var synced []string
	gateway := &mockHubSoftGateway{
		CreateServiceOrderFunc: func(ctx context.Context, tk *ticket.Ticket) (string, error) {
			id := fmt.Sprintf("OS-%d", tk.ID())
			synced = append(synced, id)
			return id, nil
		},
	}

	useCase := NewProcessPendingSyncUseCase(repo, gateway, 0, &mockLogger{})

	processed, err := useCase.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, processed)
	assert.Equal(t, []string{"OS-10", "OS-11"}, synced)
	assert.True(t, first.IsSynced())
	assert.True(t, second.IsSynced())
}

func TestProcessPendingSyncUseCase_Execute_PartialFailure(t *testing.T) {
	first := pendingTicket(t, 10)
	second := pendingTicket(t, 11)

	repo := &mockTicketRepository{
		FindPendingSyncFunc: func(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{first, second}, nil
		},
	}
	gateway := &mockHubSoftGateway{
		CreateServiceOrderFunc: func(ctx context.Context, tk *ticket.Ticket) (string, error) {
			if tk.ID() == 10 {
				return "", errors.New("hubsoft timeout")
			}
			return "OS-11", nil
		},
	}

	useCase := NewProcessPendingSyncUseCase(repo, gateway, 20, &mockLogger{})

	processed, err := useCase.Execute(context.Background())
	require.NoError(t, err, "a single failed push must not abort the sweep")

	assert.Equal(t, 1, processed)
	assert.False(t, first.IsSynced())
	assert.True(t, second.IsSynced())
}

func TestSyncTicketUseCase_Execute_AlreadySynced(t *testing.T) {
	existing := pendingTicket(t, 12)
	require.NoError(t, existing.SyncWithHubSoft("OS-EXISTING"))

	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	gateway := &mockHubSoftGateway{
		CreateServiceOrderFunc: func(ctx context.Context, tk *ticket.Ticket) (string, error) {
			t.Fatal("synced ticket must not be pushed again")
			return "", nil
		},
	}

	useCase := NewSyncTicketUseCase(repo, gateway, &mockEventDispatcher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), SyncTicketCommand{TicketID: 12})
	require.NoError(t, err)
	assert.Equal(t, "OS-EXISTING", result.HubSoftID)
}
