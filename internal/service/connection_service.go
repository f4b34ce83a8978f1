package service

import (
	"context"
	"log"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

type ConnectionService struct {
	store repository.Store
	send  pkg.EventSender
}

func NewConnectionService(store repository.Store, send pkg.EventSender) *ConnectionService {
	if send == nil {
		send = pkg.LogSender
	}
	return &ConnectionService{store: store, send: send}
}

// Create 新申请一律 pending，influencerId 取当前登录达人。
// 不校验活动是否存在或处于 active，mysql 后端靠外键兜底。
func (s *ConnectionService) Create(ctx context.Context, influencerID, campaignID uint64) (*model.Connection, error) {
	connection := &model.Connection{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Status:       model.ConnectionStatusPending,
	}
	if err := s.store.CreateConnection(ctx, connection); err != nil {
		return nil, err
	}

	if err := s.send(ctx, "connection.requested", connection.ID, connection); err != nil {
		log.Printf("connection event send err: %v", err)
	}
	return connection, nil
}

// UpdateStatus 只做企业角色校验，不校验活动归属（与线上行为一致）
func (s *ConnectionService) UpdateStatus(ctx context.Context, id uint64, status model.ConnectionStatus) (*model.Connection, error) {
	connection, err := s.store.UpdateConnectionStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if err := s.send(ctx, "connection."+string(status), connection.ID, connection); err != nil {
		log.Printf("connection event send err: %v", err)
	}
	return connection, nil
}

func (s *ConnectionService) ListByInfluencer(ctx context.Context, influencerID uint64) ([]model.Connection, error) {
	return s.store.GetConnectionsByInfluencer(ctx, influencerID)
}

func (s *ConnectionService) ListByCampaign(ctx context.Context, campaignID uint64) ([]model.Connection, error) {
	return s.store.GetConnectionsByCampaign(ctx, campaignID)
}
