package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/ledger"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
	"gmao/internal/shared/errors"
)

type LedgerRepository struct {
	db     *gorm.DB
	mapper mappers.LedgerMapper
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{
		db:     db,
		mapper: mappers.NewLedgerMapper(),
	}
}

func (r *LedgerRepository) Append(ctx context.Context, entry *ledger.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		// The unique index on ticket_id is the backstop against charging the
		// same ticket twice.
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("ticket already charged")
		}
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *LedgerRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.LedgerEntryModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ledger entry existence: %w", err)
	}

	return count > 0, nil
}

func (r *LedgerRepository) ListByClient(ctx context.Context, clientID uint) ([]*ledger.Entry, error) {
	return r.list(ctx, "client_id = ?", clientID, "created_at DESC")
}

func (r *LedgerRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ledger.Entry, error) {
	return r.list(ctx, "ticket_id = ?", ticketID, "created_at ASC")
}

func (r *LedgerRepository) list(ctx context.Context, where string, id uint, order string) ([]*ledger.Entry, error) {
	var entryModels []models.LedgerEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(where, id).
		Order(order).
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	entries := make([]*ledger.Entry, 0, len(entryModels))
	for i := range entryModels {
		e, err := r.mapper.ToDomain(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
