package service

import (
	"context"
	"log"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

type CampaignService struct {
	store repository.Store
	send  pkg.EventSender
}

func NewCampaignService(store repository.Store, send pkg.EventSender) *CampaignService {
	if send == nil {
		send = pkg.LogSender
	}
	return &CampaignService{store: store, send: send}
}

type CampaignInput struct {
	Title        string
	Description  string
	Requirements string
	Budget       string
	Status       model.CampaignStatus
}

// Create companyId 一律取当前登录企业，忽略请求里的值
func (s *CampaignService) Create(ctx context.Context, companyID uint64, in CampaignInput) (*model.Campaign, error) {
	campaign := &model.Campaign{
		CompanyID:    companyID,
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Budget:       in.Budget,
		Status:       in.Status,
	}
	if err := s.store.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	if err := s.send(ctx, "campaign.created", campaign.ID, campaign); err != nil {
		log.Printf("campaign event send err: %v", err)
	}
	return campaign, nil
}

func (s *CampaignService) ListActive(ctx context.Context) ([]model.Campaign, error) {
	return s.store.GetActiveCampaigns(ctx)
}

func (s *CampaignService) ListByCompany(ctx context.Context, companyID uint64) ([]model.Campaign, error) {
	return s.store.GetCampaignsByCompany(ctx, companyID)
}
