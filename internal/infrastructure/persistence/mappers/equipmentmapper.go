package mappers

import (
	"time"

	"gorm.io/datatypes"

	"gmao/internal/domain/equipment"
	"gmao/internal/infrastructure/persistence/models"
)

type EquipmentMapper interface {
	ToModel(eq *equipment.Equipment) *models.EquipmentModel
	ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error)
}

type EquipmentMapperImpl struct{}

func NewEquipmentMapper() EquipmentMapper {
	return &EquipmentMapperImpl{}
}

func (m *EquipmentMapperImpl) ToModel(eq *equipment.Equipment) *models.EquipmentModel {
	return &models.EquipmentModel{
		ID:            eq.ID(),
		ClientID:      eq.ClientID(),
		Kind:          eq.Kind(),
		Model:         eq.Model(),
		SerialNumber:  eq.SerialNumber(),
		Status:        eq.Status(),
		InstalledAt:   timeToDatePtr(eq.InstalledAt()),
		WarrantyEndAt: timeToDatePtr(eq.WarrantyEndAt()),
		CreatedAt:     timeToMilli(eq.CreatedAt()),
		UpdatedAt:     timeToMilli(eq.UpdatedAt()),
	}
}

func (m *EquipmentMapperImpl) ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error) {
	return equipment.ReconstructEquipment(
		model.ID,
		model.ClientID,
		model.Kind,
		model.Model,
		model.SerialNumber,
		model.Status,
		dateToTimePtr(model.InstalledAt),
		dateToTimePtr(model.WarrantyEndAt),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}

func timeToDatePtr(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func dateToTimePtr(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
