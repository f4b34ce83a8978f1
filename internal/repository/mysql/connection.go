package mysql

import (
	"context"

	"github.com/zemmendes/Lumera-App/internal/model"
)

func (s *Store) CreateConnection(ctx context.Context, connection *model.Connection) error {
	return translate(s.db.WithContext(ctx).Create(connection).Error)
}

func (s *Store) GetConnectionsByInfluencer(ctx context.Context, influencerID uint64) ([]model.Connection, error) {
	list := make([]model.Connection, 0)
	err := s.db.WithContext(ctx).
		Where("influencer_id = ?", influencerID).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) GetConnectionsByCampaign(ctx context.Context, campaignID uint64) ([]model.Connection, error) {
	list := make([]model.Connection, 0)
	err := s.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// UpdateConnectionStatus 先查后改，缺行返回 NotFound 而不是 500
func (s *Store) UpdateConnectionStatus(ctx context.Context, id uint64, status model.ConnectionStatus) (*model.Connection, error) {
	var connection model.Connection
	if err := s.db.WithContext(ctx).First(&connection, id).Error; err != nil {
		return nil, translate(err)
	}
	err := s.db.WithContext(ctx).
		Model(&connection).
		Update("status", status).Error
	if err != nil {
		return nil, translate(err)
	}
	connection.Status = status
	return &connection, nil
}
