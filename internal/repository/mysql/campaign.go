package mysql

import (
	"context"

	"github.com/zemmendes/Lumera-App/internal/model"
)

func (s *Store) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return translate(s.db.WithContext(ctx).Create(campaign).Error)
}

func (s *Store) GetCampaign(ctx context.Context, id uint64) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := s.db.WithContext(ctx).First(&campaign, id).Error; err != nil {
		return nil, translate(err)
	}
	return &campaign, nil
}

func (s *Store) GetCampaignsByCompany(ctx context.Context, companyID uint64) ([]model.Campaign, error) {
	list := make([]model.Campaign, 0)
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) GetActiveCampaigns(ctx context.Context) ([]model.Campaign, error) {
	list := make([]model.Campaign, 0)
	err := s.db.WithContext(ctx).
		Where("status = ?", model.CampaignStatusActive).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}
