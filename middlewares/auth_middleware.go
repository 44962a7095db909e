package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shnickelbob/Fall-2025-MacroPal/utils"
)

// AuthMiddleware resolves the acting user for every protected route. It
// prefers a Bearer session token; clients that predate token auth may still
// send an opaque X-User-ID header. No resolvable identity rejects the request
// before anything touches storage.
func AuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			userID, err := utils.ParseUserID(jwtSecret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			c.Set("userID", userID)
			c.Next()
			return
		}

		if v := c.GetHeader("X-User-ID"); v != "" {
			id, err := strconv.ParseUint(v, 10, 32)
			if err != nil || id == 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
				return
			}
			c.Set("userID", uint(id))
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
	}
}
