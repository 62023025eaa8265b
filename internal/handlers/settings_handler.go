package handlers

import (
	"net/http"

	"resto_manager/internal/middleware"
	"resto_manager/internal/models"
	"resto_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"settings": settings})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	updated, err := h.settingsService.UpdateSettings(&settings, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Settings updated successfully", gin.H{"settings": updated})
}
