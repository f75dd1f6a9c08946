package contract

import "context"

type ContractRepository interface {
	Save(ctx context.Context, contract *MaintenanceContract) error
	Update(ctx context.Context, contract *MaintenanceContract) error
	GetByID(ctx context.Context, id uint) (*MaintenanceContract, error)
	// ListByClient returns the client's contracts, most recent first.
	ListByClient(ctx context.Context, clientID uint) ([]*MaintenanceContract, error)
}
