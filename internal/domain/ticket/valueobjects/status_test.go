package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatusIsValid(t *testing.T) {
	tests := []struct {
		name   string
		status TicketStatus
		want   bool
	}{
		{"pending is valid", StatusPending, true},
		{"open is valid", StatusOpen, true},
		{"in_progress is valid", StatusInProgress, true},
		{"resolved is valid", StatusResolved, true},
		{"closed is valid", StatusClosed, true},
		{"cancelled is valid", StatusCancelled, true},
		{"empty is invalid", TicketStatus(""), false},
		{"unknown is invalid", TicketStatus("reopened"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestTicketStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{"pending assign", StatusPending, StatusInProgress, true},
		{"pending cancel", StatusPending, StatusCancelled, true},
		{"pending cannot resolve", StatusPending, StatusResolved, false},
		{"pending cannot close", StatusPending, StatusClosed, false},
		{"open assign", StatusOpen, StatusInProgress, true},
		{"open cancel", StatusOpen, StatusCancelled, true},
		{"open cannot resolve", StatusOpen, StatusResolved, false},
		{"in_progress resolve", StatusInProgress, StatusResolved, true},
		{"in_progress reopen", StatusInProgress, StatusPending, true},
		{"in_progress cannot close", StatusInProgress, StatusClosed, false},
		{"in_progress cannot cancel", StatusInProgress, StatusCancelled, false},
		{"resolved close", StatusResolved, StatusClosed, true},
		{"resolved reopen", StatusResolved, StatusOpen, true},
		{"resolved cannot cancel", StatusResolved, StatusCancelled, false},
		{"no self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTerminalStatusesHaveNoOutgoingEdges(t *testing.T) {
	all := []TicketStatus{
		StatusPending, StatusOpen, StatusInProgress,
		StatusResolved, StatusClosed, StatusCancelled,
	}

	for _, terminal := range []TicketStatus{StatusClosed, StatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, to := range all {
			assert.False(t, terminal.CanTransitionTo(to),
				"terminal %s must not transition to %s", terminal, to)
		}
	}
}

func TestNewTicketStatus(t *testing.T) {
	status, err := NewTicketStatus("in_progress")
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = NewTicketStatus("bogus")
	assert.Error(t, err)
}
