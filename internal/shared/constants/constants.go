package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Database table names
	TableUsers        = "users"
	TableClients      = "clients"
	TableSites        = "sites"
	TableEquipments   = "equipments"
	TableTickets      = "tickets"
	TableComments     = "ticket_comments"
	TableLedger       = "contract_ledger_entries"
	TableContracts    = "maintenance_contracts"
	TableTicketEquips = "ticket_equipments"
	TableTicketSites  = "ticket_sites"
)
