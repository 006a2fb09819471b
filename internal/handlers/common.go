package handlers

import "github.com/gin-gonic/gin"

// defaultUserID keeps the single-implicit-user behavior when no auth layer
// is in front of the service.
const defaultUserID = "default_user"

func userID(c *gin.Context) string {
	if v := c.GetHeader("X-User-ID"); v != "" {
		return v
	}
	return defaultUserID
}
