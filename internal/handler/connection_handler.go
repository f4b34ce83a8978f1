package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zemmendes/Lumera-App/internal/middleware"
	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/repository"
	"github.com/zemmendes/Lumera-App/internal/service"
)

type ConnectionHandler struct {
	svc *service.ConnectionService
}

func NewConnectionHandler(svc *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{svc: svc}
}

type ConnectionCreateReq struct {
	CampaignID uint64 `json:"campaignId" binding:"required"`
	// 客户端传的 status 一律忽略，服务端强制 pending
	Status model.ConnectionStatus `json:"status"`
}

func (h *ConnectionHandler) Create(c *gin.Context) {
	var req ConnectionCreateReq
	if !bindJSON(c, &req) {
		return
	}

	user := middleware.CurrentUser(c)
	connection, err := h.svc.Create(c.Request.Context(), user.ID, req.CampaignID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create connection failed"})
		return
	}

	c.JSON(http.StatusOK, connection)
}

func (h *ConnectionHandler) ListOwn(c *gin.Context) {
	user := middleware.CurrentUser(c)

	list, err := h.svc.ListByInfluencer(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list connections failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ConnectionHandler) ListByCampaign(c *gin.Context) {
	campaignID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	list, err := h.svc.ListByCampaign(c.Request.Context(), campaignID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list connections failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type ConnectionStatusReq struct {
	Status model.ConnectionStatus `json:"status" binding:"required,oneof=accepted rejected"`
}

func (h *ConnectionHandler) UpdateStatus(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req ConnectionStatusReq
	if !bindJSON(c, &req) {
		return
	}

	connection, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "connection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "update connection failed"})
		return
	}

	c.JSON(http.StatusOK, connection)
}
