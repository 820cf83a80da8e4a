package models

type ConversationModel struct {
	ID             uint    `gorm:"primaryKey"`
	TelegramUserID int64   `gorm:"not null;index:idx_conversations_user_status"`
	Step           string  `gorm:"size:20;not null"`
	Status         string  `gorm:"size:20;not null;index:idx_conversations_user_status"`
	Category       *string `gorm:"size:30"`
	GameKey        *string `gorm:"size:30"`
	GameCustomName string  `gorm:"size:100"`
	Timing         *string `gorm:"size:20"`
	Description    string  `gorm:"type:text"`
	Attachments    string  `gorm:"type:json"`
	LastActivityAt int64   `gorm:"not null;index"`
	Version        int     `gorm:"not null;default:1"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ConversationModel) TableName() string {
	return "support_conversations"
}
