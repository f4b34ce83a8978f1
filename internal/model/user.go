package model

import "time"

type UserType string

const (
	UserTypeCompany    UserType = "company"
	UserTypeInfluencer UserType = "influencer"
)

// Valid 注册时校验账号类型
func (t UserType) Valid() bool {
	return t == UserTypeCompany || t == UserTypeInfluencer
}

type User struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:32;not null" json:"username"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Email      string    `gorm:"size:64;not null" json:"email"`
	UserType   UserType  `gorm:"size:16;not null;index" json:"userType"`
	Name       string    `gorm:"size:64;not null" json:"name"`
	Bio        string    `gorm:"type:text" json:"bio,omitempty"`
	Avatar     string    `gorm:"size:255" json:"avatar,omitempty"`
	WebsiteURL string    `gorm:"size:255" json:"websiteUrl,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
