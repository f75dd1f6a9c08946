package mappers

import (
	"gmao/internal/domain/contract"
	"gmao/internal/infrastructure/persistence/models"
)

type ContractMapper interface {
	ToModel(c *contract.MaintenanceContract) *models.MaintenanceContractModel
	ToDomain(model *models.MaintenanceContractModel) (*contract.MaintenanceContract, error)
}

type ContractMapperImpl struct{}

func NewContractMapper() ContractMapper {
	return &ContractMapperImpl{}
}

func (m *ContractMapperImpl) ToModel(c *contract.MaintenanceContract) *models.MaintenanceContractModel {
	return &models.MaintenanceContractModel{
		ID:          c.ID(),
		ClientID:    c.ClientID(),
		Terms:       c.Terms(),
		RenewalDate: timeToDatePtr(c.RenewalDate()),
		Cancelled:   c.IsCancelled(),
		CreatedAt:   timeToMilli(c.CreatedAt()),
		UpdatedAt:   timeToMilli(c.UpdatedAt()),
	}
}

func (m *ContractMapperImpl) ToDomain(model *models.MaintenanceContractModel) (*contract.MaintenanceContract, error) {
	return contract.ReconstructMaintenanceContract(
		model.ID,
		model.ClientID,
		model.Terms,
		dateToTimePtr(model.RenewalDate),
		model.Cancelled,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}
