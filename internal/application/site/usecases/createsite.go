package usecases

import (
	"context"
	"fmt"

	"gmao/internal/domain/client"
	"gmao/internal/domain/site"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CreateSiteCommand struct {
	ClientID  uint
	Name      string
	Address   string
	City      string
	Notes     string
	ActorID   uint
	ActorRole authorization.Role
}

type CreateSiteResult struct {
	SiteID uint
	Label  string
}

type CreateSiteUseCase struct {
	siteRepo   site.SiteRepository
	clientRepo client.ClientRepository
	logger     logger.Interface
}

func NewCreateSiteUseCase(siteRepo site.SiteRepository, clientRepo client.ClientRepository, logger logger.Interface) *CreateSiteUseCase {
	return &CreateSiteUseCase{
		siteRepo:   siteRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateSiteUseCase) Execute(ctx context.Context, cmd CreateSiteCommand) (*CreateSiteResult, error) {
	uc.logger.Infow("executing create site use case", "client_id", cmd.ClientID, "name", cmd.Name)

	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot create sites")
	}

	if _, err := uc.clientRepo.GetByID(ctx, cmd.ClientID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	s, err := site.NewSite(cmd.ClientID, cmd.Name, cmd.Address, cmd.City, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.siteRepo.Save(ctx, s); err != nil {
		uc.logger.Errorw("failed to save site", "error", err)
		return nil, errors.NewInternalError("failed to save site")
	}

	return &CreateSiteResult{
		SiteID: s.ID(),
		Label:  s.Label(),
	}, nil
}
