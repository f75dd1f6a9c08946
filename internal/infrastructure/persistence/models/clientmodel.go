package models

import "github.com/shopspring/decimal"

type ClientModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:128;not null;uniqueIndex"`
	ContractType string `gorm:"size:20;not null;index"`
	// Balance is NULL until a metered contract is set or first consumed.
	Balance   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt int64            `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64            `gorm:"autoUpdateTime:milli;not null"`
}

func (ClientModel) TableName() string {
	return "clients"
}
