package mappers

import (
	"fmt"

	vo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/domain/ledger"
	"gmao/internal/infrastructure/persistence/models"
)

type LedgerMapper interface {
	ToModel(e *ledger.Entry) *models.LedgerEntryModel
	ToDomain(model *models.LedgerEntryModel) (*ledger.Entry, error)
}

type LedgerMapperImpl struct{}

func NewLedgerMapper() LedgerMapper {
	return &LedgerMapperImpl{}
}

func (m *LedgerMapperImpl) ToModel(e *ledger.Entry) *models.LedgerEntryModel {
	return &models.LedgerEntryModel{
		ID:        e.ID(),
		ClientID:  e.ClientID(),
		TicketID:  e.TicketID(),
		Kind:      e.Kind().String(),
		Amount:    e.Amount(),
		Note:      e.Note(),
		CreatedAt: timeToMilli(e.CreatedAt()),
	}
}

func (m *LedgerMapperImpl) ToDomain(model *models.LedgerEntryModel) (*ledger.Entry, error) {
	kind, err := vo.NewContractType(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("invalid kind for ledger entry %d: %w", model.ID, err)
	}

	return ledger.ReconstructEntry(
		model.ID,
		model.ClientID,
		model.TicketID,
		kind,
		model.Amount,
		model.Note,
		milliToTime(model.CreatedAt),
	)
}
