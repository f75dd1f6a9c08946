package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/ticket"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
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

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return r.replaceMemberships(tx, model.ID, t.EquipmentIDs(), t.SiteIDs())
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select includes the nullable columns so clearing ClosedAt on reopen
	// actually writes NULL.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("AssigneeID", "CategoryID", "EquipmentTypeID", "Title", "Description",
			"Kind", "Priority", "Status", "ClosedAt", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return r.replaceMemberships(tx, model.ID, t.EquipmentIDs(), t.SiteIDs())
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return r.getByID(ctx, ticketID, false)
}

func (r *TicketRepository) GetByIDForUpdate(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return r.getByID(ctx, ticketID, true)
}

func (r *TicketRepository) getByID(ctx context.Context, ticketID uint, forUpdate bool) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if forUpdate {
		tx = tx.Scopes(db.ForUpdate())
	}

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	equipmentIDs, siteIDs, err := r.loadMemberships(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, equipmentIDs, siteIDs)
}

func (r *TicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", filters.Priority.String())
	}
	if filters.Kind != nil {
		query = query.Where("kind = ?", filters.Kind.String())
	}
	if filters.ClientID != nil {
		query = query.Where("client_id = ?", *filters.ClientID)
	}
	if filters.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filters.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.TicketModel
	if err := query.
		Order("opened_at DESC").
		Offset((filters.Page - 1) * filters.PageSize).
		Limit(filters.PageSize).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		equipmentIDs, siteIDs, err := r.loadMemberships(ctx, ticketModels[i].ID)
		if err != nil {
			return nil, 0, err
		}
		t, err := r.mapper.ToDomain(&ticketModels[i], equipmentIDs, siteIDs)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) loadMemberships(ctx context.Context, ticketID uint) ([]uint, []uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var equipmentIDs []uint
	if err := tx.
		Model(&models.TicketEquipmentModel{}).
		Where("ticket_id = ?", ticketID).
		Order("equipment_id ASC").
		Pluck("equipment_id", &equipmentIDs).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load ticket equipment: %w", err)
	}

	var siteIDs []uint
	if err := tx.
		Model(&models.TicketSiteModel{}).
		Where("ticket_id = ?", ticketID).
		Order("site_id ASC").
		Pluck("site_id", &siteIDs).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load ticket sites: %w", err)
	}

	return equipmentIDs, siteIDs, nil
}

// replaceMemberships rewrites both membership sets: delete all, insert all.
func (r *TicketRepository) replaceMemberships(tx *gorm.DB, ticketID uint, equipmentIDs, siteIDs []uint) error {
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.TicketEquipmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear ticket equipment: %w", err)
	}
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.TicketSiteModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear ticket sites: %w", err)
	}

	if len(equipmentIDs) > 0 {
		rows := make([]models.TicketEquipmentModel, 0, len(equipmentIDs))
		for _, id := range equipmentIDs {
			rows = append(rows, models.TicketEquipmentModel{TicketID: ticketID, EquipmentID: id})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save ticket equipment: %w", err)
		}
	}

	if len(siteIDs) > 0 {
		rows := make([]models.TicketSiteModel, 0, len(siteIDs))
		for _, id := range siteIDs {
			rows = append(rows, models.TicketSiteModel{TicketID: ticketID, SiteID: id})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save ticket sites: %w", err)
		}
	}

	return nil
}
