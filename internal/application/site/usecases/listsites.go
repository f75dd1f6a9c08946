package usecases

import (
	"context"

	"gmao/internal/domain/site"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ListSitesQuery struct {
	ClientID uint
}

type SiteView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes"`
}

type ListSitesResult struct {
	Sites []SiteView `json:"sites"`
}

type ListSitesUseCase struct {
	siteRepo site.SiteRepository
	logger   logger.Interface
}

func NewListSitesUseCase(siteRepo site.SiteRepository, logger logger.Interface) *ListSitesUseCase {
	return &ListSitesUseCase{
		siteRepo: siteRepo,
		logger:   logger,
	}
}

func (uc *ListSitesUseCase) Execute(ctx context.Context, query ListSitesQuery) (*ListSitesResult, error) {
	if query.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	sites, err := uc.siteRepo.ListByClient(ctx, query.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to list sites", "client_id", query.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to list sites")
	}

	result := &ListSitesResult{Sites: make([]SiteView, 0, len(sites))}
	for _, s := range sites {
		result.Sites = append(result.Sites, SiteView{
			ID:      s.ID(),
			Name:    s.Name(),
			Address: s.Address(),
			City:    s.City(),
			Notes:   s.Notes(),
		})
	}
	return result, nil
}
