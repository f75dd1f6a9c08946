package usecases

import (
	"context"
	"fmt"

	"gmao/internal/domain/equipment"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type UpdateEquipmentCommand struct {
	EquipmentID   uint
	Kind          string
	Model         string
	SerialNumber  string
	Status        string
	InstalledAt   string
	WarrantyEndAt string
	ActorID       uint
	ActorRole     authorization.Role
}

type UpdateEquipmentResult struct {
	EquipmentID uint
	Label       string
	Status      string
}

type UpdateEquipmentUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewUpdateEquipmentUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *UpdateEquipmentUseCase {
	return &UpdateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *UpdateEquipmentUseCase) Execute(ctx context.Context, cmd UpdateEquipmentCommand) (*UpdateEquipmentResult, error) {
	uc.logger.Infow("executing update equipment use case", "equipment_id", cmd.EquipmentID)

	if cmd.EquipmentID == 0 {
		return nil, errors.NewValidationError("equipment ID is required")
	}
	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot update equipment")
	}

	installedAt, err := parseOptionalDate(cmd.InstalledAt, "installed_at")
	if err != nil {
		return nil, err
	}
	warrantyEndAt, err := parseOptionalDate(cmd.WarrantyEndAt, "warranty_end_at")
	if err != nil {
		return nil, err
	}

	eq, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("equipment %d not found", cmd.EquipmentID))
	}

	if err := eq.Update(cmd.Kind, cmd.Model, cmd.SerialNumber, cmd.Status, installedAt, warrantyEndAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.equipmentRepo.Update(ctx, eq); err != nil {
		uc.logger.Errorw("failed to update equipment", "equipment_id", cmd.EquipmentID, "error", err)
		return nil, errors.NewInternalError("failed to update equipment")
	}

	return &UpdateEquipmentResult{
		EquipmentID: eq.ID(),
		Label:       eq.Label(),
		Status:      eq.Status(),
	}, nil
}
