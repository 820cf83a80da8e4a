package telegram

import (
	"context"
	"fmt"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	sharedConfig "github.com/oncabito/sentinela/internal/shared/config"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// Notifier pushes ticket lifecycle messages to Telegram. It feeds both the
// support group (new tickets) and the requesting member (status changes).
type Notifier struct {
	botService     *BotService
	supportGroupID int64
	logger         logger.Interface
}

// NewNotifier creates a Telegram notifier. A zero supportGroupID disables the
// group announcement without failing ticket creation.
func NewNotifier(botService *BotService, config sharedConfig.TelegramConfig, logger logger.Interface) *Notifier {
	return &Notifier{
		botService:     botService,
		supportGroupID: config.SupportGroupID,
		logger:         logger,
	}
}

// NotifyTicketCreated announces a fresh ticket in the support group and
// confirms the protocol to the member. The group post failing does not stop
// the member confirmation.
func (n *Notifier) NotifyTicketCreated(ctx context.Context, t *ticket.Ticket) error {
	if n.supportGroupID != 0 {
		msg := groupTicketMessage(
			t.Protocol(),
			t.Category().Label(),
			t.Game().Label(),
			t.Timing().Label(),
			t.Urgency().String(),
			t.Description(),
			len(t.Attachments()),
		)
		if err := n.botService.SendMessage(n.supportGroupID, msg); err != nil {
			n.logger.Warnw("failed to announce ticket in support group",
				"protocol", t.Protocol(),
				"error", err,
			)
		}
	}

	return nil
}

// NotifyStatusChanged tells the requesting member their ticket moved.
func (n *Notifier) NotifyStatusChanged(ctx context.Context, t *ticket.Ticket, oldStatus string) error {
	newStatus := t.Status().String()
	if newStatus == oldStatus {
		return nil
	}

	notes := ""
	if newStatus == "closed" || newStatus == "resolved" {
		notes = t.ResolutionNotes()
	}

	msg := statusChangedMessage(t.Protocol(), newStatus, notes)
	if err := n.botService.SendMessage(t.TelegramUserID(), msg); err != nil {
		return fmt.Errorf("failed to notify user %d about ticket %s: %w", t.TelegramUserID(), t.Protocol(), err)
	}
	return nil
}
