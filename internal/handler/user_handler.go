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

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetProfile 公开接口，未登录也可访问
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	user, err := h.svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get profile failed"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ProfileUpdateReq 省略的字段不修改
type ProfileUpdateReq struct {
	Email      *string `json:"email" binding:"omitempty,email"`
	Name       *string `json:"name" binding:"omitempty,min=1"`
	Bio        *string `json:"bio"`
	Avatar     *string `json:"avatar"`
	WebsiteURL *string `json:"websiteUrl"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req ProfileUpdateReq
	if !bindJSON(c, &req) {
		return
	}

	user := middleware.CurrentUser(c)
	updated, err := h.svc.UpdateProfile(c.Request.Context(), user.ID, service.ProfileUpdate{
		Email:      req.Email,
		Name:       req.Name,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		WebsiteURL: req.WebsiteURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "update profile failed"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) ListByType(c *gin.Context) {
	userType := model.UserType(c.Param("type"))

	users, err := h.svc.ListByType(c.Request.Context(), userType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUserType) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list users failed"})
		return
	}

	c.JSON(http.StatusOK, users)
}
