package usecases

import (
	"context"
	"fmt"
	"time"

	"gmao/internal/domain/client"
	"gmao/internal/domain/equipment"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/biztime"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CreateEquipmentCommand struct {
	ClientID     uint
	Kind         string
	Model        string
	SerialNumber string
	// InstalledAt and WarrantyEndAt are dates in 2006-01-02 form, empty for
	// unknown.
	InstalledAt   string
	WarrantyEndAt string
	ActorID       uint
	ActorRole     authorization.Role
}

type CreateEquipmentResult struct {
	EquipmentID uint
	Label       string
	Status      string
}

type CreateEquipmentUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	clientRepo    client.ClientRepository
	logger        logger.Interface
}

func NewCreateEquipmentUseCase(
	equipmentRepo equipment.EquipmentRepository,
	clientRepo client.ClientRepository,
	logger logger.Interface,
) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		clientRepo:    clientRepo,
		logger:        logger,
	}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*CreateEquipmentResult, error) {
	uc.logger.Infow("executing create equipment use case", "client_id", cmd.ClientID, "kind", cmd.Kind)

	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot create equipment")
	}

	if _, err := uc.clientRepo.GetByID(ctx, cmd.ClientID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	installedAt, err := parseOptionalDate(cmd.InstalledAt, "installed_at")
	if err != nil {
		return nil, err
	}
	warrantyEndAt, err := parseOptionalDate(cmd.WarrantyEndAt, "warranty_end_at")
	if err != nil {
		return nil, err
	}

	eq, err := equipment.NewEquipment(cmd.ClientID, cmd.Kind, cmd.Model, cmd.SerialNumber, installedAt, warrantyEndAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.equipmentRepo.Save(ctx, eq); err != nil {
		uc.logger.Errorw("failed to save equipment", "error", err)
		return nil, errors.NewInternalError("failed to save equipment")
	}

	return &CreateEquipmentResult{
		EquipmentID: eq.ID(),
		Label:       eq.Label(),
		Status:      eq.Status(),
	}, nil
}

func parseOptionalDate(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := biztime.ParseDateInBizTimezone(raw)
	if err != nil {
		return nil, errors.NewValidationError("date must be in YYYY-MM-DD form", field)
	}
	return &d, nil
}
