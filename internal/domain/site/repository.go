package site

import "context"

type SiteRepository interface {
	Save(ctx context.Context, site *Site) error
	Update(ctx context.Context, site *Site) error
	GetByID(ctx context.Context, id uint) (*Site, error)
	// ListByClient returns the client's sites ordered by name ascending.
	ListByClient(ctx context.Context, clientID uint) ([]*Site, error)
	// GetByIDs resolves a set of site IDs, used to validate ticket
	// memberships. Missing IDs are not an error; callers compare lengths.
	GetByIDs(ctx context.Context, ids []uint) ([]*Site, error)
}
