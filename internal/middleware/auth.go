package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zemmendes/Lumera-App/internal/model"
	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

const (
	// SessionCookie cookie 里放的是签名后的 sid
	SessionCookie = "lumera_session"

	ContextUserKey = "current_user"
	ContextSIDKey  = "session_id"
)

func Auth(sessions repository.SessionStore, store repository.Store, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
			return
		}

		sid, err := pkg.ParseSession(secret, cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired session"})
			return
		}

		// 服务端登录态是权威，cookie 未过期也可能已被登出
		userID, err := sessions.Get(c.Request.Context(), sid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired session"})
			return
		}

		user, err := store.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired session"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextSIDKey, sid)
		c.Next()
	}
}

// RequireUserType 角色闸门，Auth 之后使用
func RequireUserType(userType model.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
			return
		}
		if user.UserType != userType {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "forbidden"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *model.User {
	userAny, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := userAny.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func CurrentSID(c *gin.Context) string {
	sidAny, ok := c.Get(ContextSIDKey)
	if !ok {
		return ""
	}
	sid, _ := sidAny.(string)
	return sid
}
