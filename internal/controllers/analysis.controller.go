package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/ClaudiuJitea/nutritionai/internal/cache"
	"github.com/ClaudiuJitea/nutritionai/internal/openai"
	"github.com/ClaudiuJitea/nutritionai/internal/repository"
	"github.com/ClaudiuJitea/nutritionai/internal/secrets"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const preferredModelKey = "preferred_model"

const (
	modelCatalogTTL = time.Hour
	tipTTL          = 6 * time.Hour
)

type AnalysisController struct {
	client      *openai.Client
	secretStore secrets.Store
	settingRepo repository.SettingRepository
	cache       *cache.RedisClient // nil when redis is not configured
}

func NewAnalysisController(client *openai.Client, secretStore secrets.Store, settingRepo repository.SettingRepository, redisCache *cache.RedisClient) *AnalysisController {
	return &AnalysisController{
		client:      client,
		secretStore: secretStore,
		settingRepo: settingRepo,
		cache:       redisCache,
	}
}

// buildConfig assembles the immutable per-call provider configuration: key
// from the secret store, model from the user's setting when present.
func (ac *AnalysisController) buildConfig(userID uint) openai.Config {
	cfg := openai.Config{
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   os.Getenv("OPENAI_MODEL"),
	}

	key, err := ac.secretStore.APIKey()
	if err != nil {
		log.WithError(err).Warn("Failed to read API key from secret store")
	}
	cfg.APIKey = key

	if setting, err := ac.settingRepo.Get(userID, preferredModelKey); err == nil && setting != nil {
		cfg.Model = setting.Value
	}

	return cfg
}

// AnalyzeFood godoc
// @Summary Analyze a food photo
// @Description Send the base64 photo to the vision model and return the validated nutrition estimate
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body object true "Base64-encoded image"
// @Success 200 {object} map[string]interface{} "Analysis completed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request or missing API key"
// @Failure 401 {object} map[string]interface{} "API key rejected"
// @Failure 422 {object} map[string]interface{} "Response could not be parsed"
// @Failure 429 {object} map[string]interface{} "Rate limited"
// @Failure 502 {object} map[string]interface{} "Provider unavailable"
// @Router /analysis/food [post]
func (ac *AnalysisController) AnalyzeFood(c *gin.Context) {
	var body struct {
		Image string `json:"image" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	cfg := ac.buildConfig(currentUserID(c))

	result, err := ac.client.AnalyzeFood(c.Request.Context(), cfg, body.Image)
	if err != nil {
		status, message := analysisErrorStatus(err)
		c.JSON(status, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Analysis completed successfully",
		"data":    result,
	})
}

// GetStatus godoc
// @Summary Check provider connectivity
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "Connection status"
// @Router /analysis/status [get]
func (ac *AnalysisController) GetStatus(c *gin.Context) {
	cfg := ac.buildConfig(currentUserID(c))
	connected := ac.client.TestConnection(c.Request.Context(), cfg)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Connection status retrieved",
		"data":    gin.H{"connected": connected},
	})
}

// GetTip godoc
// @Summary Get a nutrition tip
// @Description Short model-generated tip; falls back to a canned sentence on any failure
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "Tip retrieved"
// @Router /analysis/tip [get]
func (ac *AnalysisController) GetTip(c *gin.Context) {
	if ac.cache != nil {
		if tip, found, err := ac.cache.GetTip(); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Tip retrieved",
				"data":    gin.H{"tip": tip},
			})
			return
		}
	}

	cfg := ac.buildConfig(currentUserID(c))
	tip := ac.client.GenerateNutritionTip(c.Request.Context(), cfg)

	if ac.cache != nil {
		if err := ac.cache.StoreTip(tip, tipTTL); err != nil {
			log.WithError(err).Warn("Failed to cache nutrition tip")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tip retrieved",
		"data":    gin.H{"tip": tip},
	})
}

// GetModels godoc
// @Summary List usable analysis models
// @Description Provider catalog filtered to recognized vision families, with a fallback list
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "Models retrieved"
// @Router /analysis/models [get]
func (ac *AnalysisController) GetModels(c *gin.Context) {
	cfg := ac.buildConfig(currentUserID(c))

	if ac.cache != nil {
		if models, found, err := ac.cache.GetModelCatalog(cfg.BaseURL); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Models retrieved",
				"data":    models,
			})
			return
		}
	}

	models := ac.client.AvailableModels(c.Request.Context(), cfg)

	if ac.cache != nil {
		if err := ac.cache.StoreModelCatalog(cfg.BaseURL, models, modelCatalogTTL); err != nil {
			log.WithError(err).Warn("Failed to cache model catalog")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Models retrieved",
		"data":    models,
	})
}

// SetAPIKey godoc
// @Summary Store the provider API key
// @Description Saves the key in the secret store, outside the relational database
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body object true "API key"
// @Success 200 {object} map[string]interface{} "API key saved"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to save API key"
// @Router /analysis/key [put]
func (ac *AnalysisController) SetAPIKey(c *gin.Context) {
	var body struct {
		APIKey string `json:"api_key" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.secretStore.SetAPIKey(body.APIKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save API key",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "API key saved",
	})
}

// DeleteAPIKey godoc
// @Summary Remove the stored provider API key
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "API key removed"
// @Failure 500 {object} map[string]interface{} "Failed to remove API key"
// @Router /analysis/key [delete]
func (ac *AnalysisController) DeleteAPIKey(c *gin.Context) {
	if err := ac.secretStore.ClearAPIKey(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to remove API key",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "API key removed",
	})
}

// analysisErrorStatus maps the client's error taxonomy onto HTTP statuses
// and user-facing messages.
func analysisErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, openai.ErrMissingAPIKey):
		return http.StatusBadRequest, "No API key configured"
	case errors.Is(err, openai.ErrUnauthorized):
		return http.StatusUnauthorized, "The provider rejected the API key"
	case errors.Is(err, openai.ErrRateLimited):
		return http.StatusTooManyRequests, "The provider is rate limiting requests"
	case errors.Is(err, openai.ErrUpstream):
		return http.StatusBadGateway, "The provider is temporarily unavailable"
	case errors.Is(err, openai.ErrInvalidResponse):
		return http.StatusUnprocessableEntity, "Could not read a nutrition estimate, try retaking the photo"
	default:
		return http.StatusBadGateway, "Failed to reach the analysis service"
	}
}
