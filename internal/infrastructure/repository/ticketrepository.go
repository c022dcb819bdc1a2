package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/mappers"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	db "github.com/roblesfd/helpdesk-backend/internal/shared/db"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") forces zero values through, so unassignment persists.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) ExistsByCreatorID(ctx context.Context, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Where("created_by = ?", userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count tickets by creator: %w", err)
	}

	return count > 0, nil
}
