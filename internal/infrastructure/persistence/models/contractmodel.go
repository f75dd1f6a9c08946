package models

import "gorm.io/datatypes"

type MaintenanceContractModel struct {
	ID          uint   `gorm:"primaryKey"`
	ClientID    uint   `gorm:"not null;index"`
	Terms       string `gorm:"type:text;not null"`
	RenewalDate *datatypes.Date
	Cancelled   bool  `gorm:"not null;default:false"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (MaintenanceContractModel) TableName() string {
	return "maintenance_contracts"
}
