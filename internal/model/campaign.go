package model

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type Campaign struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	CompanyID    uint64         `gorm:"not null;index" json:"companyId"`
	Title        string         `gorm:"size:128;not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Requirements string         `gorm:"type:text" json:"requirements,omitempty"`
	Budget       string         `gorm:"size:64;not null" json:"budget"`
	Status       CampaignStatus `gorm:"size:16;not null;index" json:"status"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`

	Company *User `gorm:"foreignKey:CompanyID" json:"-"`
}
