package mappers

import (
	"gmao/internal/domain/site"
	"gmao/internal/infrastructure/persistence/models"
)

type SiteMapper interface {
	ToModel(s *site.Site) *models.SiteModel
	ToDomain(model *models.SiteModel) (*site.Site, error)
}

type SiteMapperImpl struct{}

func NewSiteMapper() SiteMapper {
	return &SiteMapperImpl{}
}

func (m *SiteMapperImpl) ToModel(s *site.Site) *models.SiteModel {
	return &models.SiteModel{
		ID:        s.ID(),
		ClientID:  s.ClientID(),
		Name:      s.Name(),
		Address:   s.Address(),
		City:      s.City(),
		Notes:     s.Notes(),
		CreatedAt: timeToMilli(s.CreatedAt()),
		UpdatedAt: timeToMilli(s.UpdatedAt()),
	}
}

func (m *SiteMapperImpl) ToDomain(model *models.SiteModel) (*site.Site, error) {
	return site.ReconstructSite(
		model.ID,
		model.ClientID,
		model.Name,
		model.Address,
		model.City,
		model.Notes,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}
