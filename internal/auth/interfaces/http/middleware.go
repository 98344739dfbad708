package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/storefront/internal/auth/application"
)

// 上下文键
const contextUserIDKey = "auth.user_id"

// SessionMiddleware 将 Bearer 令牌解析为用户身份并写入请求上下文。
// 未携带或无效令牌不在此处拦截，由各业务路径按自身策略处理。
func SessionMiddleware(query *application.AuthQueryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		session, err := query.CurrentSession(c.Request.Context(), token)
		if err != nil {
			logging.Error(c.Request.Context(), "Failed to resolve session", "error", err)
			c.Next()
			return
		}
		if session != nil {
			c.Set(contextUserIDKey, session.UserID)
		}
		c.Next()
	}
}

// CurrentUserID 返回当前请求的用户 ID；未认证时为 0。
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(contextUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
