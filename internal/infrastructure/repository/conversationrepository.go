package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	"github.com/oncabito/sentinela/internal/infrastructure/persistence/mappers"
	"github.com/oncabito/sentinela/internal/infrastructure/persistence/models"
	"github.com/oncabito/sentinela/internal/shared/biztime"
	db "github.com/oncabito/sentinela/internal/shared/db"
	apperrors "github.com/oncabito/sentinela/internal/shared/errors"
)

type ConversationRepository struct {
	db     *gorm.DB
	mapper mappers.ConversationMapper
}

func NewConversationRepository(gormDB *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db:     gormDB,
		mapper: mappers.NewConversationMapper(),
	}
}

func (r *ConversationRepository) Save(ctx context.Context, c *conversation.SupportConversation) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	return c.SetID(model.ID)
}

// Update is a conditional write on the aggregate version so a user action
// and the expiry sweep cannot both win on the same conversation.
func (r *ConversationRepository) Update(ctx context.Context, c *conversation.SupportConversation) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ConversationModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"step":             model.Step,
			"status":           model.Status,
			"category":         model.Category,
			"game_key":         model.GameKey,
			"game_custom_name": model.GameCustomName,
			"timing":           model.Timing,
			"description":      model.Description,
			"attachments":      model.Attachments,
			"last_activity_at": model.LastActivityAt,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update conversation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("conversation was modified concurrently")
	}

	return nil
}

func (r *ConversationRepository) FindByID(ctx context.Context, id uint) (*conversation.SupportConversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conversation.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ConversationRepository) FindActiveByUser(ctx context.Context, telegramUserID int64) (*conversation.SupportConversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("telegram_user_id = ? AND status = ?", telegramUserID, conversation.StatusActive.String()).
		Order("id DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, conversation.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find active conversation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ConversationRepository) FindExpired(ctx context.Context, timeoutMinutes int) ([]*conversation.SupportConversation, error) {
	cutoff := biztime.NowUTC().Add(-time.Duration(timeoutMinutes) * time.Minute).UnixMilli()

	var found []models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status = ? AND last_activity_at <= ?", conversation.StatusActive.String(), cutoff).
		Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to list expired conversations: %w", err)
	}

	conversations := make([]*conversation.SupportConversation, 0, len(found))
	for i := range found {
		c, err := r.mapper.ToDomain(&found[i])
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}

func (r *ConversationRepository) DeactivateUserConversations(ctx context.Context, telegramUserID int64) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	now := biztime.NowUTC().UnixMilli()

	result := tx.
		Model(&models.ConversationModel{}).
		Where("telegram_user_id = ? AND status = ?", telegramUserID, conversation.StatusActive.String()).
		Updates(map[string]interface{}{
			"status":     conversation.StatusCancelled.String(),
			"updated_at": now,
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate conversations: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// CleanupOldConversations deletes finished conversations past the retention
// window. Active rows are never touched.
func (r *ConversationRepository) CleanupOldConversations(ctx context.Context, daysOld int) (int64, error) {
	cutoff := biztime.NowUTC().AddDate(0, 0, -daysOld).UnixMilli()
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("status <> ? AND updated_at <= ?", conversation.StatusActive.String(), cutoff).
		Delete(&models.ConversationModel{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to clean up conversations: %w", result.Error)
	}

	return result.RowsAffected, nil
}
