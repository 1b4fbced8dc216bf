package handlers

import (
	"net/http"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Admin Settings Handlers ---
//

// GetSettings is the handler for GET /v1/admin/settings.
func (h *Handlers) GetSettings(c *gin.Context) {
	all, err := h.Settings.All(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": all})
}

// UpdateSettingsInput defines the JSON for the settings screen.
type UpdateSettingsInput struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// UpdateSettings is the handler for PUT /v1/admin/settings.
// Writes go through the settings store so cached values are dropped.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for key, value := range input.Settings {
		if err := h.Settings.Set(c, key, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
}

// GetStoreInfo is the handler for GET /v1/store-info.
// The public subset of settings the checkout page needs: where to
// send the bank transfer.
func (h *Handlers) GetStoreInfo(c *gin.Context) {
	keys := []string{
		models.SettingStoreName,
		models.SettingStorePhone,
		models.SettingBankName,
		models.SettingBankAccount,
		models.SettingBankHolder,
	}

	info := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := h.Settings.Get(c, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store info"})
			return
		}
		info[key] = value
	}

	c.JSON(http.StatusOK, gin.H{"storeInfo": info})
}
