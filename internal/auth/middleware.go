package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// OptionalIdentity attaches the Telegram user id from a valid Bearer
// session token to the request context. It never rejects a request:
// booking stays open to anonymous users, the identity is attribution
// only.
func OptionalIdentity(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.Next()
			return
		}

		claims, err := ValidateSessionToken(strings.TrimSpace(parts[1]), sessionSecret)
		if err != nil {
			c.Next()
			return
		}

		c.Set("tg_user_id", claims.TelegramID)
		c.Next()
	}
}

func GetTelegramUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("tg_user_id")
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}
