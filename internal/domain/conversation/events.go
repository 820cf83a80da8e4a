package conversation

import (
	"strconv"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/shared/biztime"
)

const (
	EventConversationStarted   = "conversation.started"
	EventConversationCompleted = "conversation.completed"
	EventConversationCancelled = "conversation.cancelled"
	EventConversationExpired   = "conversation.expired"
)

func newBaseEvent(telegramUserID int64, eventType string) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: strconv.FormatInt(telegramUserID, 10),
		EventType:   eventType,
		OccurredAt:  biztime.NowUTC(),
		Version:     1,
	}
}

type ConversationStartedEvent struct {
	events.BaseEvent
	TelegramUserID int64
}

func NewConversationStartedEvent(telegramUserID int64) ConversationStartedEvent {
	return ConversationStartedEvent{
		BaseEvent:      newBaseEvent(telegramUserID, EventConversationStarted),
		TelegramUserID: telegramUserID,
	}
}

type ConversationCompletedEvent struct {
	events.BaseEvent
	TelegramUserID int64
}

func NewConversationCompletedEvent(telegramUserID int64) ConversationCompletedEvent {
	return ConversationCompletedEvent{
		BaseEvent:      newBaseEvent(telegramUserID, EventConversationCompleted),
		TelegramUserID: telegramUserID,
	}
}

type ConversationCancelledEvent struct {
	events.BaseEvent
	TelegramUserID int64
}

func NewConversationCancelledEvent(telegramUserID int64) ConversationCancelledEvent {
	return ConversationCancelledEvent{
		BaseEvent:      newBaseEvent(telegramUserID, EventConversationCancelled),
		TelegramUserID: telegramUserID,
	}
}

type ConversationExpiredEvent struct {
	events.BaseEvent
	TelegramUserID int64
}

func NewConversationExpiredEvent(telegramUserID int64) ConversationExpiredEvent {
	return ConversationExpiredEvent{
		BaseEvent:      newBaseEvent(telegramUserID, EventConversationExpired),
		TelegramUserID: telegramUserID,
	}
}
