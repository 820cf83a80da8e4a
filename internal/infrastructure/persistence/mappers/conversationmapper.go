package mappers

import (
	"fmt"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/infrastructure/persistence/models"
)

// ConversationMapper handles the conversion between SupportConversation
// domain entities and persistence models.
type ConversationMapper interface {
	ToModel(c *conversation.SupportConversation) (*models.ConversationModel, error)
	ToDomain(model *models.ConversationModel) (*conversation.SupportConversation, error)
}

type ConversationMapperImpl struct{}

func NewConversationMapper() ConversationMapper {
	return &ConversationMapperImpl{}
}

func (m *ConversationMapperImpl) ToModel(c *conversation.SupportConversation) (*models.ConversationModel, error) {
	attachmentsJSON, err := attachmentsToJSON(c.Attachments())
	if err != nil {
		return nil, err
	}

	model := &models.ConversationModel{
		ID:             c.ID(),
		TelegramUserID: c.TelegramUserID(),
		Step:           c.Step().String(),
		Status:         c.Status().String(),
		Description:    c.Description(),
		Attachments:    attachmentsJSON,
		LastActivityAt: c.LastActivityAt().UnixMilli(),
		Version:        c.Version(),
		CreatedAt:      c.CreatedAt().UnixMilli(),
		UpdatedAt:      c.UpdatedAt().UnixMilli(),
	}

	if cat := c.Category(); cat != nil {
		s := cat.String()
		model.Category = &s
	}
	if game := c.Game(); game != nil {
		key := string(game.Key())
		model.GameKey = &key
		model.GameCustomName = game.CustomName()
	}
	if timing := c.Timing(); timing != nil {
		s := timing.String()
		model.Timing = &s
	}

	return model, nil
}

func (m *ConversationMapperImpl) ToDomain(model *models.ConversationModel) (*conversation.SupportConversation, error) {
	step, err := conversation.NewStep(model.Step)
	if err != nil {
		return nil, fmt.Errorf("invalid stored step (id=%d): %w", model.ID, err)
	}
	status, err := conversation.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status (id=%d): %w", model.ID, err)
	}

	var category *vo.Category
	if model.Category != nil {
		cat, err := vo.NewCategory(*model.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid stored category (id=%d): %w", model.ID, err)
		}
		category = &cat
	}

	var game *vo.GameTitle
	if model.GameKey != nil {
		g, err := vo.NewGameTitle(vo.GameKey(*model.GameKey), model.GameCustomName)
		if err != nil {
			return nil, fmt.Errorf("invalid stored game (id=%d): %w", model.ID, err)
		}
		game = &g
	}

	var timing *vo.ProblemTiming
	if model.Timing != nil {
		t, err := vo.NewProblemTiming(*model.Timing)
		if err != nil {
			return nil, fmt.Errorf("invalid stored timing (id=%d): %w", model.ID, err)
		}
		timing = &t
	}

	attachments, err := attachmentsFromJSON(model.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation attachments (id=%d): %w", model.ID, err)
	}

	return conversation.ReconstructSupportConversation(
		model.ID,
		model.TelegramUserID,
		step,
		status,
		category,
		game,
		timing,
		model.Description,
		attachments,
		millisToTime(model.LastActivityAt),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
