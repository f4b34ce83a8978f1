package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zemmendes/Lumera-App/internal/middleware"
	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/service"
)

type AuthHandler struct {
	svc    *service.AuthService
	secret []byte
	ttl    time.Duration
}

func NewAuthHandler(svc *service.AuthService, secret []byte, ttl time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, secret: secret, ttl: ttl}
}

// RegisterReq 注册请求体
type RegisterReq struct {
	Username   string         `json:"username" binding:"required,min=3,max=32"`
	Password   string         `json:"password" binding:"required,min=6"`
	Email      string         `json:"email" binding:"required,email"`
	UserType   model.UserType `json:"userType" binding:"required,oneof=company influencer"`
	Name       string         `json:"name" binding:"required"`
	Bio        string         `json:"bio"`
	Avatar     string         `json:"avatar"`
	WebsiteURL string         `json:"websiteUrl"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if !bindJSON(c, &req) {
		return
	}

	user, sid, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		UserType:   req.UserType,
		Name:       req.Name,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		WebsiteURL: req.WebsiteURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "register failed"})
		return
	}

	if !h.setSessionCookie(c, sid) {
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	user, sid, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "login failed"})
		return
	}

	if !h.setSessionCookie(c, sid) {
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sid := middleware.CurrentSID(c)
	if err := h.svc.Logout(c.Request.Context(), sid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// CurrentUser 返回当前登录用户
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sid string) bool {
	token, err := pkg.SignSession(h.secret, sid, h.ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "session sign failed"})
		return false
	}
	c.SetCookie(middleware.SessionCookie, token, int(h.ttl.Seconds()), "/", "", false, true)
	return true
}
