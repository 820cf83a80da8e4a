package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	Protocol        string `gorm:"uniqueIndex;size:20;not null"`
	TelegramUserID  int64  `gorm:"not null;index"`
	Category        string `gorm:"size:30;not null;index"`
	GameKey         string `gorm:"size:30;not null"`
	GameCustomName  string `gorm:"size:100"`
	Timing          string `gorm:"size:20;not null"`
	Description     string `gorm:"type:text;not null"`
	Urgency         string `gorm:"size:10;not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	Attachments     string `gorm:"type:json"`
	AssigneeID      *uint  `gorm:"index"`
	HubSoftID       *string `gorm:"size:50;index"`
	SyncedAt        *int64
	ResolutionNotes string `gorm:"type:text"`
	Version         int    `gorm:"not null;default:1"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
	ResolvedAt      *int64
	ClosedAt        *int64

	// No foreign key constraints or associations; relationships are managed
	// by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
