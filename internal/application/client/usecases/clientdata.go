package usecases

import (
	"context"
	"fmt"

	"gmao/internal/domain/client"
	"gmao/internal/domain/equipment"
	"gmao/internal/domain/site"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type GetClientDataQuery struct {
	ClientID uint
}

type OptionView struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// ClientData is the lightweight payload the ticket form fetches when a
// client is selected: its equipment and sites as id/label pairs.
type ClientData struct {
	ClientID  uint         `json:"client_id"`
	Equipment []OptionView `json:"equipment"`
	Sites     []OptionView `json:"sites"`
}

type GetClientDataUseCase struct {
	clientRepo    client.ClientRepository
	equipmentRepo equipment.EquipmentRepository
	siteRepo      site.SiteRepository
	logger        logger.Interface
}

func NewGetClientDataUseCase(
	clientRepo client.ClientRepository,
	equipmentRepo equipment.EquipmentRepository,
	siteRepo site.SiteRepository,
	logger logger.Interface,
) *GetClientDataUseCase {
	return &GetClientDataUseCase{
		clientRepo:    clientRepo,
		equipmentRepo: equipmentRepo,
		siteRepo:      siteRepo,
		logger:        logger,
	}
}

func (uc *GetClientDataUseCase) Execute(ctx context.Context, query GetClientDataQuery) (*ClientData, error) {
	if query.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	if _, err := uc.clientRepo.GetByID(ctx, query.ClientID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", query.ClientID))
	}

	equipments, err := uc.equipmentRepo.ListByClient(ctx, query.ClientID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load client equipment")
	}
	sites, err := uc.siteRepo.ListByClient(ctx, query.ClientID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load client sites")
	}

	data := &ClientData{
		ClientID:  query.ClientID,
		Equipment: make([]OptionView, 0, len(equipments)),
		Sites:     make([]OptionView, 0, len(sites)),
	}
	for _, eq := range equipments {
		data.Equipment = append(data.Equipment, OptionView{ID: eq.ID(), Label: eq.Label()})
	}
	for _, s := range sites {
		data.Sites = append(data.Sites, OptionView{ID: s.ID(), Label: s.Label()})
	}

	return data, nil
}
