package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate is a GORM scope that takes a row-level write lock on the selected
// rows. It is only meaningful inside a transaction; callers use it to
// serialize check-then-act sequences such as the ticket close path.
//
// Example usage:
//
//	tx.Scopes(db.ForUpdate()).First(&model, id)
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}
