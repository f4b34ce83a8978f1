package model

import "time"

// Session 服务端登录态，sid 只存不透明随机串
type Session struct {
	SID       string    `gorm:"primaryKey;size:64"`
	UserID    uint64    `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
}
