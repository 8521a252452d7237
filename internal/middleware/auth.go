package middleware

import (
	"net/http"

	"shopease-be/internal/auth"
	"shopease-be/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireUser rejects requests that do not carry a valid token and loads the
// subject's identity into the request context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// RequireAdmin additionally demands the ADMIN role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}
		if claims.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "admin access required",
			})
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

func authenticate(c *gin.Context) (*auth.Claims, bool) {
	tokenStr := auth.ExtractAccessToken(c.Request)
	if tokenStr == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "please login first",
		})
		return nil, false
	}

	claims, err := auth.ParseToken(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "invalid token",
		})
		return nil, false
	}

	return claims, true
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	ctx := utils.SetUserContext(c.Request.Context(), claims.UserID, claims.Email, claims.Role)
	c.Request = c.Request.WithContext(ctx)
}
