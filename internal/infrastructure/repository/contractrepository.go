package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/contract"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
)

type ContractRepository struct {
	db     *gorm.DB
	mapper mappers.ContractMapper
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{
		db:     db,
		mapper: mappers.NewContractMapper(),
	}
}

func (r *ContractRepository) Save(ctx context.Context, c *contract.MaintenanceContract) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save contract: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ContractRepository) Update(ctx context.Context, c *contract.MaintenanceContract) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MaintenanceContractModel{}).
		Where("id = ?", model.ID).
		Select("Terms", "RenewalDate", "Cancelled", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update contract: %w", result.Error)
	}

	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uint) (*contract.MaintenanceContract, error) {
	var model models.MaintenanceContractModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("contract not found")
		}
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ContractRepository) ListByClient(ctx context.Context, clientID uint) ([]*contract.MaintenanceContract, error) {
	var contractModels []models.MaintenanceContractModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&contractModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	contracts := make([]*contract.MaintenanceContract, 0, len(contractModels))
	for i := range contractModels {
		c, err := r.mapper.ToDomain(&contractModels[i])
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, nil
}
