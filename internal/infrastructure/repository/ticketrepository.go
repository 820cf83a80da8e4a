package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oncabito/sentinela/internal/domain/ticket"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/infrastructure/persistence/mappers"
	"github.com/oncabito/sentinela/internal/infrastructure/persistence/models"
	"github.com/oncabito/sentinela/internal/shared/biztime"
	db "github.com/oncabito/sentinela/internal/shared/db"
	apperrors "github.com/oncabito/sentinela/internal/shared/errors"
)

var terminalStatuses = []string{
	vo.StatusClosed.String(),
	vo.StatusCancelled.String(),
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("ticket protocol already exists")
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update is a conditional write on the aggregate version. A lost race leaves
// zero rows affected and surfaces as a conflict.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	// Map update so cleared fields (resolved_at on reopen, resolution notes)
	// are written too; a struct update would skip them as zero values.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"category":         model.Category,
			"game_key":         model.GameKey,
			"game_custom_name": model.GameCustomName,
			"timing":           model.Timing,
			"description":      model.Description,
			"urgency":          model.Urgency,
			"status":           model.Status,
			"attachments":      model.Attachments,
			"assignee_id":      model.AssigneeID,
			"hub_soft_id":      model.HubSoftID,
			"synced_at":        model.SyncedAt,
			"resolution_notes": model.ResolutionNotes,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
			"resolved_at":      model.ResolvedAt,
			"closed_at":        model.ClosedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("ticket was modified concurrently")
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByProtocol(ctx context.Context, protocol string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("protocol = ?", protocol).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByUser(ctx context.Context, telegramUserID int64) ([]*ticket.Ticket, error) {
	var found []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("telegram_user_id = ?", telegramUserID).
		Order("created_at DESC").
		Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to list user tickets: %w", err)
	}

	return r.toDomainList(found)
}

func (r *TicketRepository) FindByStatus(ctx context.Context, status vo.TicketStatus) ([]*ticket.Ticket, error) {
	var found []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by status: %w", err)
	}

	return r.toDomainList(found)
}

func (r *TicketRepository) FindActiveTickets(ctx context.Context) ([]*ticket.Ticket, error) {
	var found []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status NOT IN ?", terminalStatuses).
		Order("created_at ASC").
		Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to list active tickets: %w", err)
	}

	return r.toDomainList(found)
}

func (r *TicketRepository) FindByHubSoftID(ctx context.Context, hubsoftID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("hub_soft_id = ?", hubsoftID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindPendingSync(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	var found []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("hub_soft_id IS NULL").
		Where("status NOT IN ?", terminalStatuses).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets pending sync: %w", err)
	}

	return r.toDomainList(found)
}

func (r *TicketRepository) CountActiveByUser(ctx context.Context, telegramUserID int64) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Where("telegram_user_id = ?", telegramUserID).
		Where("status NOT IN ?", terminalStatuses).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active tickets: %w", err)
	}

	return count, nil
}

// UpdateSyncStatus persists only the sync bookkeeping columns so the sweep
// does not contend with lifecycle updates on the same row.
func (r *TicketRepository) UpdateSyncStatus(ctx context.Context, ticketID uint, hubsoftID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	now := biztime.NowUTC().UnixMilli()

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND hub_soft_id IS NULL", ticketID).
		Updates(map[string]interface{}{
			"hub_soft_id": hubsoftID,
			"synced_at":   now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update sync status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("ticket is already synced")
	}

	return nil
}

func (r *TicketRepository) toDomainList(found []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(found))
	for i := range found {
		t, err := r.mapper.ToDomain(&found[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
