package models

type SiteModel struct {
	ID        uint   `gorm:"primaryKey"`
	ClientID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:128;not null"`
	Address   string `gorm:"size:255"`
	City      string `gorm:"size:128"`
	Notes     string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SiteModel) TableName() string {
	return "sites"
}
