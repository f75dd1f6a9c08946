package client

import "context"

type ClientRepository interface {
	Save(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, clientID uint) (*Client, error)
	// GetByIDForUpdate loads the client with a row-level write lock. Must be
	// called inside a transaction; used by the ticket close path so balance
	// updates serialize with concurrent closes.
	GetByIDForUpdate(ctx context.Context, clientID uint) (*Client, error)
	List(ctx context.Context, page, pageSize int) ([]*Client, int64, error)
}
