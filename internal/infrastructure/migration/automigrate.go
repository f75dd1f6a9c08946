package migration

import (
	"gmao/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the schema is built from.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ClientModel{},
		&models.SiteModel{},
		&models.EquipmentModel{},
		&models.TicketModel{},
		&models.TicketEquipmentModel{},
		&models.TicketSiteModel{},
		&models.CommentModel{},
		&models.LedgerEntryModel{},
		&models.MaintenanceContractModel{},
	}
}
