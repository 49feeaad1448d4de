package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/service"
)

type SettingsHandler struct {
	Settings *service.SettingsService
}

func (h *SettingsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/settings")
	group.GET("/rates", h.getRates)
	group.PUT("/rates", h.putRates)
	group.GET("/switches/:name", h.getSwitch)
	group.PUT("/switches/:name", h.putSwitch)
}

type ratesRequest struct {
	CompanyRate float64 `json:"company_rate" binding:"required"`
	DevShare    float64 `json:"dev_share" binding:"required"`
}

// @Summary Active commission rate table
// @Tags settings
// @Success 200 {object} apiResponse
// @Router /api/settings/rates [get]
func (h *SettingsHandler) getRates(c *gin.Context) {
	if h.Settings == nil {
		Error(c, http.StatusInternalServerError, "settings unavailable", nil)
		return
	}
	rates := h.Settings.Rates(c.Request.Context())
	Ok(c, gin.H{
		"company_rate": rates.Company,
		"dev_share":    rates.DevShare,
	}, nil)
}

// @Summary Override commission rate table
// @Tags settings
// @Param body body ratesRequest true "fractional rates in [0,1]"
// @Success 200 {object} apiResponse
// @Router /api/settings/rates [put]
func (h *SettingsHandler) putRates(c *gin.Context) {
	if h.Settings == nil {
		Error(c, http.StatusInternalServerError, "settings unavailable", nil)
		return
	}
	var req ratesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.CompanyRate < 0 || req.CompanyRate > 1 || req.DevShare < 0 || req.DevShare > 1 {
		Error(c, http.StatusBadRequest, "rates must be fractions in [0,1]", nil)
		return
	}
	if err := h.Settings.SetRates(c.Request.Context(), req.CompanyRate, req.DevShare); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	rates := h.Settings.Rates(c.Request.Context())
	Ok(c, gin.H{
		"company_rate": rates.Company,
		"dev_share":    rates.DevShare,
	}, nil)
}

func (h *SettingsHandler) getSwitch(c *gin.Context) {
	if h.Settings == nil {
		Error(c, http.StatusInternalServerError, "settings unavailable", nil)
		return
	}
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		Error(c, http.StatusBadRequest, "name required", nil)
		return
	}
	enabled := h.Settings.IsEnabled(c.Request.Context(), "feature."+name, false)
	Ok(c, gin.H{"name": name, "enabled": enabled}, nil)
}

func (h *SettingsHandler) putSwitch(c *gin.Context) {
	if h.Settings == nil {
		Error(c, http.StatusInternalServerError, "settings unavailable", nil)
		return
	}
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		Error(c, http.StatusBadRequest, "name required", nil)
		return
	}
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := h.Settings.SetEnabled(c.Request.Context(), "feature."+name, req.Enabled); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"name": name, "enabled": req.Enabled}, nil)
}
