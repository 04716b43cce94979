package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/ClaudiuJitea/nutritionai/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken godoc
// @Summary Issue a device token
// @Description Pair a device with the profile and receive a bearer token for all other endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object true "Device identifier"
// @Success 200 {object} map[string]interface{} "Token issued successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to issue token"
// @Router /auth/token [post]
func (ac *AuthController) IssueToken(c *gin.Context) {
	var pairRequest struct {
		DeviceID string `json:"device_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&pairRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	claims := jwt.MapClaims{
		"user_id":   models.DefaultUserID,
		"device_id": pairRequest.DeviceID,
		"exp":       time.Now().AddDate(1, 0, 0).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Token issued successfully",
		"data":    gin.H{"token": signed},
	})
}
