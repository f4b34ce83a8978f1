package repository

import (
	"context"
	"errors"

	"github.com/zemmendes/Lumera-App/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store 统一的存储契约，memory 和 mysql 两套实现行为一致
type Store interface {
	GetUser(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	GetUsersByType(ctx context.Context, userType model.UserType) ([]model.User, error)

	CreateCampaign(ctx context.Context, campaign *model.Campaign) error
	GetCampaign(ctx context.Context, id uint64) (*model.Campaign, error)
	GetCampaignsByCompany(ctx context.Context, companyID uint64) ([]model.Campaign, error)
	GetActiveCampaigns(ctx context.Context) ([]model.Campaign, error)

	CreateConnection(ctx context.Context, connection *model.Connection) error
	GetConnectionsByInfluencer(ctx context.Context, influencerID uint64) ([]model.Connection, error)
	GetConnectionsByCampaign(ctx context.Context, campaignID uint64) ([]model.Connection, error)
	UpdateConnectionStatus(ctx context.Context, id uint64, status model.ConnectionStatus) (*model.Connection, error)
}

// SessionStore sid -> 用户的登录态，带过期时间
type SessionStore interface {
	Create(ctx context.Context, userID uint64) (string, error)
	Get(ctx context.Context, sid string) (uint64, error)
	Delete(ctx context.Context, sid string) error
	Close() error
}
