package models

import "github.com/shopspring/decimal"

// LedgerEntryModel rows are append-only. The unique index on TicketID is the
// storage-level guarantee that a ticket is never charged twice.
type LedgerEntryModel struct {
	ID        uint            `gorm:"primaryKey"`
	ClientID  uint            `gorm:"not null;index"`
	TicketID  uint            `gorm:"not null;uniqueIndex"`
	Kind      string          `gorm:"size:20;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Note      string          `gorm:"size:255;not null"`
	CreatedAt int64           `gorm:"autoCreateTime:milli;not null;index"`
}

func (LedgerEntryModel) TableName() string {
	return "contract_ledger_entries"
}
