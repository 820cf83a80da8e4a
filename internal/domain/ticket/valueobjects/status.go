package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusPending    TicketStatus = "pending"
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
	StatusCancelled  TicketStatus = "cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:    true,
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusCancelled:  true,
}

// ticketStatusTransitions is the full lifecycle table. CLOSED and CANCELLED
// are terminal: no outgoing edges.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusInProgress,
		StatusCancelled,
	},
	StatusOpen: {
		StatusInProgress,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusResolved,
		StatusPending,
	},
	StatusResolved: {
		StatusClosed,
		StatusOpen,
	},
	StatusClosed:    {},
	StatusCancelled: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
// Terminal tickets are retained for audit, never deleted.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusClosed || ts == StatusCancelled
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
