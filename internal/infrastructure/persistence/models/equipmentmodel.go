package models

import "gorm.io/datatypes"

type EquipmentModel struct {
	ID            uint    `gorm:"primaryKey"`
	ClientID      uint    `gorm:"not null;index"`
	Kind          string  `gorm:"size:128;not null;index"`
	Model         string  `gorm:"size:128"`
	SerialNumber  string  `gorm:"size:128;index"`
	Status        string  `gorm:"size:50;not null"`
	InstalledAt   *datatypes.Date
	WarrantyEndAt *datatypes.Date
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (EquipmentModel) TableName() string {
	return "equipments"
}
