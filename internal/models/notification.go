package models

import "gorm.io/datatypes"

type Notification struct {
	BaseModel
	UserID  string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(40);not null" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Message string           `gorm:"not null" json:"message"`
	Data    datatypes.JSON   `gorm:"type:jsonb" json:"data,omitempty"`
	IsRead  bool             `gorm:"default:false" json:"is_read"`
}
