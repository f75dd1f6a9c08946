package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	ClientID        uint   `gorm:"not null;index"`
	AssigneeID      *uint  `gorm:"index"`
	CategoryID      *uint  `gorm:"index"`
	EquipmentTypeID *uint  `gorm:"index"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text"`
	Kind            string `gorm:"size:30;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	OpenedAt        int64  `gorm:"not null;index"`
	ClosedAt        *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// No foreign key constraints; relationships are managed by the
	// application.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketEquipmentModel and TicketSiteModel are membership rows; the full set
// for a ticket is replaced wholesale on each ticket update.
type TicketEquipmentModel struct {
	ID          uint `gorm:"primaryKey"`
	TicketID    uint `gorm:"not null;uniqueIndex:idx_ticket_equipment"`
	EquipmentID uint `gorm:"not null;uniqueIndex:idx_ticket_equipment;index"`
}

func (TicketEquipmentModel) TableName() string {
	return "ticket_equipments"
}

type TicketSiteModel struct {
	ID       uint `gorm:"primaryKey"`
	TicketID uint `gorm:"not null;uniqueIndex:idx_ticket_site"`
	SiteID   uint `gorm:"not null;uniqueIndex:idx_ticket_site;index"`
}

func (TicketSiteModel) TableName() string {
	return "ticket_sites"
}

type CommentModel struct {
	ID       uint   `gorm:"primaryKey"`
	TicketID uint   `gorm:"not null;index"`
	AuthorID uint   `gorm:"not null;index"`
	Content  string `gorm:"type:text;not null"`
	// PreviousContent holds exactly the content replaced by the most recent
	// edit.
	PreviousContent *string `gorm:"type:text"`
	LastEditorID    *uint
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt       *int64
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
