package usecases

import (
	"context"
	"fmt"
	"time"

	"gmao/internal/domain/equipment"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ListEquipmentQuery struct {
	ClientID uint
}

type EquipmentView struct {
	ID            uint       `json:"id"`
	ClientID      uint       `json:"client_id"`
	Kind          string     `json:"kind"`
	Model         string     `json:"model"`
	SerialNumber  string     `json:"serial_number"`
	Status        string     `json:"status"`
	InstalledAt   *time.Time `json:"installed_at,omitempty"`
	WarrantyEndAt *time.Time `json:"warranty_end_at,omitempty"`
	Label         string     `json:"label"`
}

type ListEquipmentResult struct {
	Equipment []EquipmentView `json:"equipment"`
}

type ListEquipmentUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewListEquipmentUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *ListEquipmentUseCase) Execute(ctx context.Context, query ListEquipmentQuery) (*ListEquipmentResult, error) {
	if query.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	equipments, err := uc.equipmentRepo.ListByClient(ctx, query.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "client_id", query.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to list equipment")
	}

	result := &ListEquipmentResult{Equipment: make([]EquipmentView, 0, len(equipments))}
	for _, eq := range equipments {
		result.Equipment = append(result.Equipment, newEquipmentView(eq))
	}
	return result, nil
}

type GetEquipmentQuery struct {
	EquipmentID uint
}

type GetEquipmentUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewGetEquipmentUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *GetEquipmentUseCase {
	return &GetEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *GetEquipmentUseCase) Execute(ctx context.Context, query GetEquipmentQuery) (*EquipmentView, error) {
	if query.EquipmentID == 0 {
		return nil, errors.NewValidationError("equipment ID is required")
	}

	eq, err := uc.equipmentRepo.GetByID(ctx, query.EquipmentID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("equipment %d not found", query.EquipmentID))
	}

	view := newEquipmentView(eq)
	return &view, nil
}

func newEquipmentView(eq *equipment.Equipment) EquipmentView {
	return EquipmentView{
		ID:            eq.ID(),
		ClientID:      eq.ClientID(),
		Kind:          eq.Kind(),
		Model:         eq.Model(),
		SerialNumber:  eq.SerialNumber(),
		Status:        eq.Status(),
		InstalledAt:   eq.InstalledAt(),
		WarrantyEndAt: eq.WarrantyEndAt(),
		Label:         eq.Label(),
	}
}
