package usecases

import (
	"context"

	"gmao/internal/domain/client"
	"gmao/internal/domain/equipment"
	"gmao/internal/shared/logger"
)

type mockEquipmentRepository struct {
	SaveFunc         func(ctx context.Context, eq *equipment.Equipment) error
	UpdateFunc       func(ctx context.Context, eq *equipment.Equipment) error
	GetByIDFunc      func(ctx context.Context, id uint) (*equipment.Equipment, error)
	ListByClientFunc func(ctx context.Context, clientID uint) ([]*equipment.Equipment, error)
}

func (m *mockEquipmentRepository) Save(ctx context.Context, eq *equipment.Equipment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, eq)
	}
	return nil
}

func (m *mockEquipmentRepository) Update(ctx context.Context, eq *equipment.Equipment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, eq)
	}
	return nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) ListByClient(ctx context.Context, clientID uint) ([]*equipment.Equipment, error) {
	if m.ListByClientFunc != nil {
		return m.ListByClientFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) GetByIDs(ctx context.Context, ids []uint) ([]*equipment.Equipment, error) {
	return nil, nil
}

type mockClientRepository struct {
	GetByIDFunc func(ctx context.Context, clientID uint) (*client.Client, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error   { return nil }
func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error { return nil }
func (m *mockClientRepository) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, clientID)
	}
	return nil, nil
}
func (m *mockClientRepository) GetByIDForUpdate(ctx context.Context, clientID uint) (*client.Client, error) {
	return nil, nil
}
func (m *mockClientRepository) List(ctx context.Context, page, pageSize int) ([]*client.Client, int64, error) {
	return nil, 0, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
