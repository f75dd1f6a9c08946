package usecases

import "context"

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*CreateClientResult, error)
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, cmd UpdateClientCommand) (*UpdateClientResult, error)
}

type GetClientExecutor interface {
	Execute(ctx context.Context, query GetClientQuery) (*ClientDetail, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error)
}

type GetClientDataExecutor interface {
	Execute(ctx context.Context, query GetClientDataQuery) (*ClientData, error)
}
