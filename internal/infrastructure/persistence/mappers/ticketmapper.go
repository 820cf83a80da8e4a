package mappers

import (
	"fmt"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	attachmentsJSON, err := attachmentsToJSON(t.Attachments())
	if err != nil {
		return nil, err
	}

	return &models.TicketModel{
		ID:              t.ID(),
		Protocol:        t.Protocol(),
		TelegramUserID:  t.TelegramUserID(),
		Category:        t.Category().String(),
		GameKey:         string(t.Game().Key()),
		GameCustomName:  t.Game().CustomName(),
		Timing:          t.Timing().String(),
		Description:     t.Description(),
		Urgency:         t.Urgency().String(),
		Status:          t.Status().String(),
		Attachments:     attachmentsJSON,
		AssigneeID:      t.AssigneeID(),
		HubSoftID:       t.HubSoftID(),
		SyncedAt:        timeToMillisPtr(t.SyncedAt()),
		ResolutionNotes: t.ResolutionNotes(),
		Version:         t.Version(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
		ResolvedAt:      timeToMillisPtr(t.ResolvedAt()),
		ClosedAt:        timeToMillisPtr(t.ClosedAt()),
	}, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid stored category (id=%d): %w", model.ID, err)
	}
	game, err := vo.NewGameTitle(vo.GameKey(model.GameKey), model.GameCustomName)
	if err != nil {
		return nil, fmt.Errorf("invalid stored game (id=%d): %w", model.ID, err)
	}
	timing, err := vo.NewProblemTiming(model.Timing)
	if err != nil {
		return nil, fmt.Errorf("invalid stored timing (id=%d): %w", model.ID, err)
	}
	urgency, err := vo.NewUrgencyLevel(model.Urgency)
	if err != nil {
		return nil, fmt.Errorf("invalid stored urgency (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status (id=%d): %w", model.ID, err)
	}

	attachments, err := attachmentsFromJSON(model.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket attachments (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Protocol,
		model.TelegramUserID,
		category,
		game,
		timing,
		model.Description,
		urgency,
		status,
		attachments,
		model.AssigneeID,
		model.HubSoftID,
		millisToTimePtr(model.SyncedAt),
		model.ResolutionNotes,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		millisToTimePtr(model.ResolvedAt),
		millisToTimePtr(model.ClosedAt),
	)
}
