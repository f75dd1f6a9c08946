package equipment

import "context"

type EquipmentRepository interface {
	Save(ctx context.Context, eq *Equipment) error
	Update(ctx context.Context, eq *Equipment) error
	GetByID(ctx context.Context, id uint) (*Equipment, error)
	// ListByClient returns the client's equipment ordered by kind ascending.
	ListByClient(ctx context.Context, clientID uint) ([]*Equipment, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Equipment, error)
}
