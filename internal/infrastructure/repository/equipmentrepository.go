package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/equipment"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
)

type EquipmentRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{
		db:     db,
		mapper: mappers.NewEquipmentMapper(),
	}
}

func (r *EquipmentRepository) Save(ctx context.Context, eq *equipment.Equipment) error {
	model := r.mapper.ToModel(eq)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}

	return eq.SetID(model.ID)
}

func (r *EquipmentRepository) Update(ctx context.Context, eq *equipment.Equipment) error {
	model := r.mapper.ToModel(eq)
	tx := db.GetTxFromContext(ctx, r.db)

	// Nullable date columns stay writable through the explicit Select.
	result := tx.
		Model(&models.EquipmentModel{}).
		Where("id = ?", model.ID).
		Select("Kind", "Model", "SerialNumber", "Status", "InstalledAt", "WarrantyEndAt", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("equipment not found")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) ListByClient(ctx context.Context, clientID uint) ([]*equipment.Equipment, error) {
	var equipmentModels []models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("client_id = ?", clientID).
		Order("kind ASC").
		Find(&equipmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	return r.toDomainList(equipmentModels)
}

func (r *EquipmentRepository) GetByIDs(ctx context.Context, ids []uint) ([]*equipment.Equipment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var equipmentModels []models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&equipmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.toDomainList(equipmentModels)
}

func (r *EquipmentRepository) toDomainList(equipmentModels []models.EquipmentModel) ([]*equipment.Equipment, error) {
	items := make([]*equipment.Equipment, 0, len(equipmentModels))
	for i := range equipmentModels {
		eq, err := r.mapper.ToDomain(&equipmentModels[i])
		if err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	return items, nil
}
