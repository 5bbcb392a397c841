package models

import "time"

type NotificationModel struct {
	ID              uint   `gorm:"primaryKey"`
	RecipientID     uint   `gorm:"index;not null"`
	Title           string `gorm:"size:200;not null"`
	Message         string `gorm:"type:text;not null"`
	RelatedTicketID *uint  `gorm:"index"`
	Read            bool   `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
