package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zemmendes/Lumera-App/internal/handler"
	"github.com/zemmendes/Lumera-App/internal/middleware"
	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
	"github.com/zemmendes/Lumera-App/internal/service"
)

// Deps 启动时显式注入，不走全局单例
type Deps struct {
	Store         repository.Store
	Sessions      repository.SessionStore
	SessionSecret []byte
	SessionTTL    time.Duration
	Events        pkg.EventSender
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	authSvc := service.NewAuthService(deps.Store, deps.Sessions)
	userSvc := service.NewUserService(deps.Store)
	campaignSvc := service.NewCampaignService(deps.Store, deps.Events)
	connectionSvc := service.NewConnectionService(deps.Store, deps.Events)

	auth := handler.NewAuthHandler(authSvc, deps.SessionSecret, deps.SessionTTL)
	user := handler.NewUserHandler(userSvc)
	campaign := handler.NewCampaignHandler(campaignSvc)
	connection := handler.NewConnectionHandler(connectionSvc)
	upload := handler.NewUploadHandler()

	authRequired := middleware.Auth(deps.Sessions, deps.Store, deps.SessionSecret)
	companyOnly := middleware.RequireUserType(model.UserTypeCompany)
	influencerOnly := middleware.RequireUserType(model.UserTypeInfluencer)

	api := r.Group("/api")

	// 公开接口
	{
		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)
		api.GET("/profile/:id", user.GetProfile)
		api.GET("/users/:type", user.ListByType)
	}

	// 登录态接口
	authed := api.Group("")
	authed.Use(authRequired)
	{
		authed.POST("/logout", auth.Logout)
		authed.GET("/user", auth.CurrentUser)
		authed.PATCH("/profile", user.UpdateProfile)
		authed.POST("/upload", upload.Upload)
	}

	// 活动相关接口
	campaignGroup := authed.Group("/campaigns")
	{
		campaignGroup.GET("", campaign.ListActive)
		campaignGroup.POST("", companyOnly, campaign.Create)
		campaignGroup.GET("/company", companyOnly, campaign.ListOwn)
	}

	// 合作申请相关接口
	connectionGroup := authed.Group("/connections")
	{
		connectionGroup.POST("", influencerOnly, connection.Create)
		connectionGroup.GET("/influencer", influencerOnly, connection.ListOwn)
		connectionGroup.GET("/campaign/:id", connection.ListByCampaign)
		connectionGroup.PATCH("/:id/status", companyOnly, connection.UpdateStatus)
	}

	return r
}
