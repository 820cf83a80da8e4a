package usecases

import (
	"time"

	"github.com/oncabito/sentinela/internal/domain/ticket"
)

type AttachmentDTO struct {
	FileID   string
	FileName string
	MimeType string
	FileSize int64
}

// TicketDTO is the read model exposed to the interface layers.
type TicketDTO struct {
	ID              uint
	Protocol        string
	TelegramUserID  int64
	Category        string
	CategoryLabel   string
	Game            string
	GameLabel       string
	Timing          string
	TimingLabel     string
	Description     string
	Urgency         string
	Status          string
	Attachments     []AttachmentDTO
	AssigneeID      *uint
	HubSoftID       *string
	SyncedAt        *time.Time
	ResolutionNotes string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
	ClosedAt        *time.Time
}

func ticketToDTO(t *ticket.Ticket) *TicketDTO {
	attachments := make([]AttachmentDTO, 0, len(t.Attachments()))
	for _, att := range t.Attachments() {
		attachments = append(attachments, AttachmentDTO{
			FileID:   att.FileID(),
			FileName: att.FileName(),
			MimeType: att.MimeType(),
			FileSize: att.FileSize(),
		})
	}

	return &TicketDTO{
		ID:              t.ID(),
		Protocol:        t.Protocol(),
		TelegramUserID:  t.TelegramUserID(),
		Category:        t.Category().String(),
		CategoryLabel:   t.Category().Label(),
		Game:            string(t.Game().Key()),
		GameLabel:       t.Game().Label(),
		Timing:          t.Timing().String(),
		TimingLabel:     t.Timing().Label(),
		Description:     t.Description(),
		Urgency:         t.Urgency().String(),
		Status:          t.Status().String(),
		Attachments:     attachments,
		AssigneeID:      t.AssigneeID(),
		HubSoftID:       t.HubSoftID(),
		SyncedAt:        t.SyncedAt(),
		ResolutionNotes: t.ResolutionNotes(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		ResolvedAt:      t.ResolvedAt(),
		ClosedAt:        t.ClosedAt(),
	}
}
