package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zemmendes/Lumera-App/internal/middleware"
	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/service"
)

type CampaignHandler struct {
	svc *service.CampaignService
}

func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{svc: svc}
}

type CampaignCreateReq struct {
	Title        string               `json:"title" binding:"required"`
	Description  string               `json:"description" binding:"required"`
	Requirements string               `json:"requirements"`
	Budget       string               `json:"budget" binding:"required"`
	Status       model.CampaignStatus `json:"status" binding:"required,oneof=draft active completed"`
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req CampaignCreateReq
	if !bindJSON(c, &req) {
		return
	}

	user := middleware.CurrentUser(c)
	campaign, err := h.svc.Create(c.Request.Context(), user.ID, service.CampaignInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Budget:       req.Budget,
		Status:       req.Status,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create campaign failed"})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// ListActive 所有登录用户可见的活动大厅
func (h *CampaignHandler) ListActive(c *gin.Context) {
	list, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list campaigns failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CampaignHandler) ListOwn(c *gin.Context) {
	user := middleware.CurrentUser(c)

	list, err := h.svc.ListByCompany(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list campaigns failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}
