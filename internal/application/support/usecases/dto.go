package usecases

import (
	"time"

	"github.com/oncabito/sentinela/internal/domain/conversation"
)

// ConversationDTO is the flattened conversation state handed to the bot layer
// for rendering the current step.
type ConversationDTO struct {
	ID              uint
	TelegramUserID  int64
	Step            string
	Status          string
	Category        string
	CategoryLabel   string
	Game            string
	GameLabel       string
	Timing          string
	TimingLabel     string
	Description     string
	AttachmentCount int
	LastActivityAt  time.Time
}

func conversationToDTO(c *conversation.SupportConversation) *ConversationDTO {
	dto := &ConversationDTO{
		ID:              c.ID(),
		TelegramUserID:  c.TelegramUserID(),
		Step:            c.Step().String(),
		Status:          c.Status().String(),
		Description:     c.Description(),
		AttachmentCount: len(c.Attachments()),
		LastActivityAt:  c.LastActivityAt(),
	}

	if cat := c.Category(); cat != nil {
		dto.Category = cat.String()
		dto.CategoryLabel = cat.Label()
	}
	if game := c.Game(); game != nil {
		dto.Game = string(game.Key())
		dto.GameLabel = game.Label()
	}
	if timing := c.Timing(); timing != nil {
		dto.Timing = timing.String()
		dto.TimingLabel = timing.Label()
	}

	return dto
}
