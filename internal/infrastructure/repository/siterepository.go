package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/site"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
)

type SiteRepository struct {
	db     *gorm.DB
	mapper mappers.SiteMapper
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{
		db:     db,
		mapper: mappers.NewSiteMapper(),
	}
}

func (r *SiteRepository) Save(ctx context.Context, s *site.Site) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save site: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SiteRepository) Update(ctx context.Context, s *site.Site) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SiteModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Address", "City", "Notes", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update site: %w", result.Error)
	}

	return nil
}

func (r *SiteRepository) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	var model models.SiteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("site not found")
		}
		return nil, fmt.Errorf("failed to find site: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SiteRepository) ListByClient(ctx context.Context, clientID uint) ([]*site.Site, error) {
	var siteModels []models.SiteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&siteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	return r.toDomainList(siteModels)
}

func (r *SiteRepository) GetByIDs(ctx context.Context, ids []uint) ([]*site.Site, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var siteModels []models.SiteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&siteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find sites: %w", err)
	}

	return r.toDomainList(siteModels)
}

func (r *SiteRepository) toDomainList(siteModels []models.SiteModel) ([]*site.Site, error) {
	sites := make([]*site.Site, 0, len(siteModels))
	for i := range siteModels {
		s, err := r.mapper.ToDomain(&siteModels[i])
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, nil
}
