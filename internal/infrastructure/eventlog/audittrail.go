// Package eventlog records domain events on the structured log, giving the
// ticket and conversation lifecycle an audit trail without a second store.
package eventlog

import (
	"fmt"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// AuditTrailHandler writes one log line per domain event.
type AuditTrailHandler struct {
	logger logger.Interface
}

func NewAuditTrailHandler(log logger.Interface) *AuditTrailHandler {
	return &AuditTrailHandler{logger: log}
}

func (h *AuditTrailHandler) Handle(event events.DomainEvent) error {
	h.logger.Infow("domain event",
		"event_type", event.GetEventType(),
		"aggregate_id", event.GetAggregateID(),
		"occurred_at", event.GetOccurredAt(),
	)
	return nil
}

func (h *AuditTrailHandler) CanHandle(eventType string) bool {
	return true
}

// auditedEventTypes is every event the ticket and conversation aggregates
// record. New event types must be added here to reach the audit trail.
var auditedEventTypes = []string{
	ticket.EventTicketCreated,
	ticket.EventTicketAssigned,
	ticket.EventTicketStatusChanged,
	ticket.EventTicketUrgencyElevated,
	ticket.EventTicketSynced,
	ticket.EventTicketClosed,
	conversation.EventConversationStarted,
	conversation.EventConversationCompleted,
	conversation.EventConversationCancelled,
	conversation.EventConversationExpired,
}

// Register subscribes the handler to every audited event type.
func Register(subscriber events.EventSubscriber, handler events.EventHandler) error {
	for _, eventType := range auditedEventTypes {
		if err := subscriber.Subscribe(eventType, handler); err != nil {
			return fmt.Errorf("failed to subscribe audit handler to %s: %w", eventType, err)
		}
	}
	return nil
}
