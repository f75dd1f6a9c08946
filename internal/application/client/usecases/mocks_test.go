package usecases

import (
	"context"

	"gmao/internal/domain/client"
	"gmao/internal/domain/equipment"
	"gmao/internal/domain/ledger"
	"gmao/internal/domain/site"
	"gmao/internal/domain/ticket"
	"gmao/internal/shared/logger"
)

type mockClientRepository struct {
	SaveFunc             func(ctx context.Context, c *client.Client) error
	UpdateFunc           func(ctx context.Context, c *client.Client) error
	GetByIDFunc          func(ctx context.Context, clientID uint) (*client.Client, error)
	GetByIDForUpdateFunc func(ctx context.Context, clientID uint) (*client.Client, error)
	ListFunc             func(ctx context.Context, page, pageSize int) ([]*client.Client, int64, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockClientRepository) GetByIDForUpdate(ctx context.Context, clientID uint) (*client.Client, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, page, pageSize int) ([]*client.Client, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type mockTicketRepository struct {
	ListFunc func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

type mockEquipmentRepository struct {
	ListByClientFunc func(ctx context.Context, clientID uint) ([]*equipment.Equipment, error)
}

func (m *mockEquipmentRepository) Save(ctx context.Context, eq *equipment.Equipment) error {
	return nil
}
func (m *mockEquipmentRepository) Update(ctx context.Context, eq *equipment.Equipment) error {
	return nil
}
func (m *mockEquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
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

type mockSiteRepository struct {
	ListByClientFunc func(ctx context.Context, clientID uint) ([]*site.Site, error)
}

func (m *mockSiteRepository) Save(ctx context.Context, s *site.Site) error   { return nil }
func (m *mockSiteRepository) Update(ctx context.Context, s *site.Site) error { return nil }
func (m *mockSiteRepository) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	return nil, nil
}
func (m *mockSiteRepository) ListByClient(ctx context.Context, clientID uint) ([]*site.Site, error) {
	if m.ListByClientFunc != nil {
		return m.ListByClientFunc(ctx, clientID)
	}
	return nil, nil
}
func (m *mockSiteRepository) GetByIDs(ctx context.Context, ids []uint) ([]*site.Site, error) {
	return nil, nil
}

type mockLedgerRepository struct {
	ListByClientFunc func(ctx context.Context, clientID uint) ([]*ledger.Entry, error)
}

func (m *mockLedgerRepository) Append(ctx context.Context, entry *ledger.Entry) error { return nil }
func (m *mockLedgerRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	return false, nil
}
func (m *mockLedgerRepository) ListByClient(ctx context.Context, clientID uint) ([]*ledger.Entry, error) {
	if m.ListByClientFunc != nil {
		return m.ListByClientFunc(ctx, clientID)
	}
	return nil, nil
}
func (m *mockLedgerRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ledger.Entry, error) {
	return nil, nil
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
