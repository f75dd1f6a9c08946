package usecases

import (
	"context"
	"fmt"
	"time"

	"gmao/internal/domain/client"
	"gmao/internal/domain/equipment"
	"gmao/internal/domain/ledger"
	"gmao/internal/domain/site"
	"gmao/internal/domain/ticket"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type GetClientQuery struct {
	ClientID  uint
	ActorID   uint
	ActorRole authorization.Role
}

type ClientTicketView struct {
	ID       uint       `json:"id"`
	Title    string     `json:"title"`
	Status   string     `json:"status"`
	Priority string     `json:"priority"`
	OpenedAt time.Time  `json:"opened_at"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`
}

type ClientEquipmentView struct {
	ID           uint   `json:"id"`
	Kind         string `json:"kind"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

type ClientSiteView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type ConsumptionView struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Kind      string    `json:"kind"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type ClientDetail struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	ContractType string                `json:"contract_type"`
	Balance      *string               `json:"balance,omitempty"`
	Tickets      []ClientTicketView    `json:"tickets"`
	Equipment    []ClientEquipmentView `json:"equipment"`
	Sites        []ClientSiteView      `json:"sites"`
	Consumption  []ConsumptionView     `json:"consumption"`
}

// GetClientUseCase assembles the client sheet: identity and contract, the
// ticket history newest first, equipment and sites, and the consumption
// history newest first.
type GetClientUseCase struct {
	clientRepo    client.ClientRepository
	ticketRepo    ticket.TicketRepository
	equipmentRepo equipment.EquipmentRepository
	siteRepo      site.SiteRepository
	ledgerRepo    ledger.LedgerRepository
	logger        logger.Interface
}

func NewGetClientUseCase(
	clientRepo client.ClientRepository,
	ticketRepo ticket.TicketRepository,
	equipmentRepo equipment.EquipmentRepository,
	siteRepo site.SiteRepository,
	ledgerRepo ledger.LedgerRepository,
	logger logger.Interface,
) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo:    clientRepo,
		ticketRepo:    ticketRepo,
		equipmentRepo: equipmentRepo,
		siteRepo:      siteRepo,
		ledgerRepo:    ledgerRepo,
		logger:        logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, query GetClientQuery) (*ClientDetail, error) {
	if query.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	cl, err := uc.clientRepo.GetByID(ctx, query.ClientID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", query.ClientID))
	}

	tickets, _, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{
		ClientID: &query.ClientID,
		Page:     1,
		PageSize: 100,
	})
	if err != nil {
		return nil, errors.NewInternalError("failed to load client tickets")
	}

	equipments, err := uc.equipmentRepo.ListByClient(ctx, cl.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load client equipment")
	}

	sites, err := uc.siteRepo.ListByClient(ctx, cl.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load client sites")
	}

	entries, err := uc.ledgerRepo.ListByClient(ctx, cl.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load consumption history")
	}

	detail := &ClientDetail{
		ID:           cl.ID(),
		Name:         cl.Name(),
		ContractType: cl.ContractType().String(),
		Tickets:      make([]ClientTicketView, 0, len(tickets)),
		Equipment:    make([]ClientEquipmentView, 0, len(equipments)),
		Sites:        make([]ClientSiteView, 0, len(sites)),
		Consumption:  make([]ConsumptionView, 0, len(entries)),
	}
	if cl.Balance() != nil {
		balance := cl.Balance().String()
		detail.Balance = &balance
	}

	for _, t := range tickets {
		detail.Tickets = append(detail.Tickets, ClientTicketView{
			ID:       t.ID(),
			Title:    t.Title(),
			Status:   t.Status().String(),
			Priority: t.Priority().String(),
			OpenedAt: t.OpenedAt(),
			ClosedAt: t.ClosedAt(),
		})
	}
	for _, eq := range equipments {
		detail.Equipment = append(detail.Equipment, ClientEquipmentView{
			ID:           eq.ID(),
			Kind:         eq.Kind(),
			Model:        eq.Model(),
			SerialNumber: eq.SerialNumber(),
			Status:       eq.Status(),
		})
	}
	for _, s := range sites {
		detail.Sites = append(detail.Sites, ClientSiteView{
			ID:   s.ID(),
			Name: s.Name(),
			City: s.City(),
		})
	}
	for _, e := range entries {
		detail.Consumption = append(detail.Consumption, ConsumptionView{
			ID:        e.ID(),
			TicketID:  e.TicketID(),
			Kind:      e.Kind().String(),
			Amount:    e.Amount().String(),
			Note:      e.Note(),
			CreatedAt: e.CreatedAt(),
		})
	}

	return detail, nil
}
