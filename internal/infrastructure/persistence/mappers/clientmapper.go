package mappers

import (
	"fmt"

	"gmao/internal/domain/client"
	vo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/infrastructure/persistence/models"
)

// ClientMapper handles the conversion between Client domain entities and
// persistence models.
type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:           c.ID(),
		Name:         c.Name(),
		ContractType: c.ContractType().String(),
		Balance:      c.Balance(),
		CreatedAt:    timeToMilli(c.CreatedAt()),
		UpdatedAt:    timeToMilli(c.UpdatedAt()),
	}
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*client.Client, error) {
	contractType, err := vo.NewContractType(model.ContractType)
	if err != nil {
		return nil, fmt.Errorf("invalid contract type for client %d: %w", model.ID, err)
	}

	return client.ReconstructClient(
		model.ID,
		model.Name,
		contractType,
		model.Balance,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}
