package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the profile id set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	if id, exists := c.Get("user_id"); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// isValidDate checks the ISO yyyy-MM-dd format the store compares on.
func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}
