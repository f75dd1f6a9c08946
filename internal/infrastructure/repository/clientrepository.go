package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/client"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
)

type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
	}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("Balance") keeps a NULL balance writable; Updates skips zero
	// values otherwise.
	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Select("Name", "ContractType", "Balance", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	return r.getByID(ctx, clientID, false)
}

func (r *ClientRepository) GetByIDForUpdate(ctx context.Context, clientID uint) (*client.Client, error) {
	return r.getByID(ctx, clientID, true)
}

func (r *ClientRepository) getByID(ctx context.Context, clientID uint, forUpdate bool) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)
	if forUpdate {
		tx = tx.Scopes(db.ForUpdate())
	}

	if err := tx.First(&model, clientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClientRepository) List(ctx context.Context, page, pageSize int) ([]*client.Client, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ClientModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	var clientModels []models.ClientModel
	if err := tx.
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&clientModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, 0, len(clientModels))
	for i := range clientModels {
		c, err := r.mapper.ToDomain(&clientModels[i])
		if err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}

	return clients, total, nil
}
