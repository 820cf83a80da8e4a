package ticket

import (
	"github.com/oncabito/sentinela/internal/domain/shared/events"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/biztime"
)

const (
	EventTicketCreated         = "ticket.created"
	EventTicketAssigned        = "ticket.assigned"
	EventTicketStatusChanged   = "ticket.status_changed"
	EventTicketUrgencyElevated = "ticket.urgency_elevated"
	EventTicketSynced          = "ticket.synced_with_hubsoft"
	EventTicketClosed          = "ticket.closed"
)

func newBaseEvent(protocol, eventType string) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: protocol,
		EventType:   eventType,
		OccurredAt:  biztime.NowUTC(),
		Version:     1,
	}
}

type TicketCreatedEvent struct {
	events.BaseEvent
	Protocol       string
	TelegramUserID int64
	Category       string
	Urgency        string
}

func NewTicketCreatedEvent(protocol string, telegramUserID int64, category vo.Category, urgency vo.UrgencyLevel) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:      newBaseEvent(protocol, EventTicketCreated),
		Protocol:       protocol,
		TelegramUserID: telegramUserID,
		Category:       category.String(),
		Urgency:        urgency.String(),
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	Protocol       string
	TelegramUserID int64
	TechnicianID   uint
}

func NewTicketAssignedEvent(protocol string, telegramUserID int64, technicianID uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent:      newBaseEvent(protocol, EventTicketAssigned),
		Protocol:       protocol,
		TelegramUserID: telegramUserID,
		TechnicianID:   technicianID,
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	Protocol       string
	TelegramUserID int64
	OldStatus      string
	NewStatus      string
}

func NewTicketStatusChangedEvent(protocol string, telegramUserID int64, oldStatus, newStatus vo.TicketStatus) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent:      newBaseEvent(protocol, EventTicketStatusChanged),
		Protocol:       protocol,
		TelegramUserID: telegramUserID,
		OldStatus:      oldStatus.String(),
		NewStatus:      newStatus.String(),
	}
}

type TicketUrgencyElevatedEvent struct {
	events.BaseEvent
	Protocol       string
	TelegramUserID int64
	OldUrgency     string
	NewUrgency     string
}

func NewTicketUrgencyElevatedEvent(protocol string, telegramUserID int64, oldUrgency, newUrgency vo.UrgencyLevel) TicketUrgencyElevatedEvent {
	return TicketUrgencyElevatedEvent{
		BaseEvent:      newBaseEvent(protocol, EventTicketUrgencyElevated),
		Protocol:       protocol,
		TelegramUserID: telegramUserID,
		OldUrgency:     oldUrgency.String(),
		NewUrgency:     newUrgency.String(),
	}
}

type TicketSyncedEvent struct {
	events.BaseEvent
	Protocol       string
	TelegramUserID int64
	HubSoftID      string
}

func NewTicketSyncedEvent(protocol string, telegramUserID int64, hubsoftID string) TicketSyncedEvent {
	return TicketSyncedEvent{
		BaseEvent:      newBaseEvent(protocol, EventTicketSynced),
		Protocol:       protocol,
		TelegramUserID: telegramUserID,
		HubSoftID:      hubsoftID,
	}
}

type TicketClosedEvent struct {
	events.BaseEvent
	Protocol        string
	TelegramUserID  int64
	ResolutionNotes string
}

func NewTicketClosedEvent(protocol string, telegramUserID int64, notes string) TicketClosedEvent {
	return TicketClosedEvent{
		BaseEvent:       newBaseEvent(protocol, EventTicketClosed),
		Protocol:        protocol,
		TelegramUserID:  telegramUserID,
		ResolutionNotes: notes,
	}
}
