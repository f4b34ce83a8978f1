package model

import "time"

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// Connection 达人对活动的合作申请，由企业接受或拒绝
type Connection struct {
	ID           uint64           `gorm:"primaryKey" json:"id"`
	CampaignID   uint64           `gorm:"not null;index" json:"campaignId"`
	InfluencerID uint64           `gorm:"not null;index" json:"influencerId"`
	Status       ConnectionStatus `gorm:"size:16;not null;index" json:"status"`
	CreatedAt    time.Time        `json:"-"`
	UpdatedAt    time.Time        `json:"-"`

	Campaign   *Campaign `gorm:"foreignKey:CampaignID" json:"-"`
	Influencer *User     `gorm:"foreignKey:InfluencerID" json:"-"`
}
