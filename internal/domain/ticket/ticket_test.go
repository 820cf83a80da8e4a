package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()

	game, err := vo.NewGameTitle(vo.GameValorant, "")
	require.NoError(t, err)

	tkt, err := NewTicket(
		"LOC388610534",
		123456789,
		vo.CategoryConnectivity,
		game,
		vo.TimingToday,
		"Perdendo conexão toda hora",
		vo.ClassifyUrgency(vo.CategoryConnectivity, vo.TimingToday),
		nil,
	)
	require.NoError(t, err)
	return tkt
}

func newTestAttachment(t *testing.T, uniqueID string) vo.Attachment {
	t.Helper()

	att, err := vo.NewAttachment("file-"+uniqueID, uniqueID, "ping.png", "image/png", 2048)
	require.NoError(t, err)
	return att
}

func TestNewTicket(t *testing.T) {
	tkt := newTestTicket(t)

	assert.Equal(t, "LOC388610534", tkt.Protocol())
	assert.Equal(t, vo.StatusPending, tkt.Status())
	assert.Equal(t, vo.UrgencyHigh, tkt.Urgency())
	assert.Empty(t, tkt.Attachments())
	assert.False(t, tkt.IsSynced())
	assert.Equal(t, 1, tkt.Version())

	pulled := tkt.PullEvents()
	require.Len(t, pulled, 1)
	assert.Equal(t, EventTicketCreated, pulled[0].GetEventType())
	assert.Empty(t, tkt.PullEvents())
}

func TestNewTicketValidation(t *testing.T) {
	game, err := vo.NewGameTitle(vo.GameValorant, "")
	require.NoError(t, err)

	tests := []struct {
		name        string
		protocol    string
		userID      int64
		description string
	}{
		{"empty protocol", "", 1, "long enough description"},
		{"zero user", "LOC000000001", 0, "long enough description"},
		{"short description", "LOC000000001", 1, "too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.protocol, tt.userID, vo.CategoryOther, game,
				vo.TimingRecurrent, tt.description, vo.UrgencyLow, nil)
			assert.Error(t, err)
		})
	}
}

func TestNewTicketDescriptionBoundary(t *testing.T) {
	game, err := vo.NewGameTitle(vo.GameValorant, "")
	require.NoError(t, err)

	// Nine runes rejected, ten accepted. Multi-byte runes count as one.
	_, err = NewTicket("LOC000000001", 1, vo.CategoryOther, game,
		vo.TimingRecurrent, "conexão x", vo.UrgencyLow, nil)
	assert.ErrorIs(t, err, ErrDescriptionTooShort)

	_, err = NewTicket("LOC000000001", 1, vo.CategoryOther, game,
		vo.TimingRecurrent, "conexão xy", vo.UrgencyLow, nil)
	assert.NoError(t, err)
}

func TestAssignToTechnician(t *testing.T) {
	tkt := newTestTicket(t)
	tkt.PullEvents()

	require.NoError(t, tkt.AssignToTechnician(42))

	assert.Equal(t, vo.StatusInProgress, tkt.Status())
	require.NotNil(t, tkt.AssigneeID())
	assert.Equal(t, uint(42), *tkt.AssigneeID())

	pulled := tkt.PullEvents()
	require.Len(t, pulled, 2)
	assert.Equal(t, EventTicketAssigned, pulled[0].GetEventType())
	assert.Equal(t, EventTicketStatusChanged, pulled[1].GetEventType())
}

func TestAssignToTechnicianInvalidFromInProgress(t *testing.T) {
	tkt := newTestTicket(t)
	require.NoError(t, tkt.AssignToTechnician(42))

	err := tkt.AssignToTechnician(43)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// First assignee is untouched on failure.
	assert.Equal(t, uint(42), *tkt.AssigneeID())
}

func TestChangeStatusFollowsLifecycleTable(t *testing.T) {
	tkt := newTestTicket(t)

	require.NoError(t, tkt.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, tkt.ChangeStatus(vo.StatusResolved))
	assert.NotNil(t, tkt.ResolvedAt())

	require.NoError(t, tkt.ChangeStatus(vo.StatusOpen))
	assert.Nil(t, tkt.ResolvedAt(), "reopen clears resolution timestamp")

	require.NoError(t, tkt.ChangeStatus(vo.StatusCancelled))
	assert.NotNil(t, tkt.ClosedAt())
}

func TestChangeStatusRejectsUnlistedEdge(t *testing.T) {
	tkt := newTestTicket(t)

	err := tkt.ChangeStatus(vo.StatusClosed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, vo.StatusPending, tkt.Status())
	assert.Equal(t, 1, tkt.Version(), "aggregate unchanged on rejected transition")
}

func TestClosedTicketRejectsEveryTransition(t *testing.T) {
	tkt := newTestTicket(t)
	require.NoError(t, tkt.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, tkt.ChangeStatus(vo.StatusResolved))
	require.NoError(t, tkt.CloseWithResolution("troca de cabo resolveu"))

	for _, to := range []vo.TicketStatus{
		vo.StatusPending, vo.StatusOpen, vo.StatusInProgress,
		vo.StatusResolved, vo.StatusCancelled,
	} {
		err := tkt.ChangeStatus(to)
		assert.ErrorIs(t, err, ErrInvalidTransition, "closed -> %s must fail", to)
	}
}

func TestAddAttachmentCap(t *testing.T) {
	tkt := newTestTicket(t)

	for i, uid := range []string{"u1", "u2", "u3"} {
		require.NoError(t, tkt.AddAttachment(newTestAttachment(t, uid)))
		assert.Len(t, tkt.Attachments(), i+1)
	}

	err := tkt.AddAttachment(newTestAttachment(t, "u4"))
	assert.ErrorIs(t, err, ErrAttachmentLimit)
	assert.Len(t, tkt.Attachments(), 3)
}

func TestElevateUrgency(t *testing.T) {
	game, err := vo.NewGameTitle(vo.GameValorant, "")
	require.NoError(t, err)

	tkt, err := NewTicket("LOC000000002", 1, vo.CategoryOther, game,
		vo.TimingRecurrent, "problema antigo de sempre", vo.UrgencyLow, nil)
	require.NoError(t, err)
	tkt.PullEvents()

	tkt.ElevateUrgency()
	assert.Equal(t, vo.UrgencyNormal, tkt.Urgency())

	tkt.ElevateUrgency()
	assert.Equal(t, vo.UrgencyHigh, tkt.Urgency())

	// Third call is a no-op and records no event.
	tkt.ElevateUrgency()
	assert.Equal(t, vo.UrgencyHigh, tkt.Urgency())
	assert.Len(t, tkt.PullEvents(), 2)
}

func TestSyncWithHubSoftIdempotency(t *testing.T) {
	tkt := newTestTicket(t)
	tkt.PullEvents()

	require.NoError(t, tkt.SyncWithHubSoft("OS-9912"))
	require.NotNil(t, tkt.HubSoftID())
	assert.Equal(t, "OS-9912", *tkt.HubSoftID())
	assert.NotNil(t, tkt.SyncedAt())

	// Same id again is a no-op without a second event.
	require.NoError(t, tkt.SyncWithHubSoft("OS-9912"))
	assert.Len(t, tkt.PullEvents(), 1)

	// A different id after sync is rejected.
	err := tkt.SyncWithHubSoft("OS-0001")
	assert.ErrorIs(t, err, ErrAlreadySynced)
	assert.Equal(t, "OS-9912", *tkt.HubSoftID())
}

func TestCloseWithResolution(t *testing.T) {
	tkt := newTestTicket(t)
	require.NoError(t, tkt.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, tkt.ChangeStatus(vo.StatusResolved))

	require.NoError(t, tkt.CloseWithResolution("reinício do ONU normalizou o sinal"))
	assert.Equal(t, vo.StatusClosed, tkt.Status())
	assert.Equal(t, "reinício do ONU normalizou o sinal", tkt.ResolutionNotes())
	assert.NotNil(t, tkt.ClosedAt())
}

func TestCloseWithResolutionOnlyFromResolved(t *testing.T) {
	tkt := newTestTicket(t)

	err := tkt.CloseWithResolution("notas")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, tkt.ChangeStatus(vo.StatusInProgress))
	err = tkt.CloseWithResolution("notas")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
