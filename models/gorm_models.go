// models/gorm_models.go
package models

import (
	"gorm.io/gorm"
)

// GormMatchRecord 已结束对局的归档记录
type GormMatchRecord struct {
	gorm.Model
	RoomID   string       `gorm:"index;not null"`
	GameType string       `gorm:"not null"`
	Players  []PlayerInfo `gorm:"serializer:json;type:jsonb;not null"`
	Result   string       `gorm:"not null"`
}
