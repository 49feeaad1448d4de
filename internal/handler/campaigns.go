package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estatecrm/internal/models"
	"estatecrm/internal/repository"
	"estatecrm/internal/service"
)

type CampaignHandler struct {
	Repo    repository.Repository
	Reports *service.ROIReportService
}

func (h *CampaignHandler) Register(r *gin.Engine) {
	group := r.Group("/api/campaigns")
	group.GET("", h.list)
	group.POST("", h.create)
	group.GET("/:id", h.get)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

type campaignRequest struct {
	ProjectName string  `json:"project_name"`
	ChannelName string  `json:"channel_name" binding:"required"`
	Cost        string  `json:"cost"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (r campaignRequest) apply(item *models.Campaign) {
	item.ProjectName = strings.TrimSpace(r.ProjectName)
	item.ChannelName = strings.TrimSpace(r.ChannelName)
	item.Cost = strings.TrimSpace(r.Cost)
	item.StartDate = trimPtr(r.StartDate)
	item.EndDate = trimPtr(r.EndDate)
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// @Summary List campaigns
// @Tags campaigns
// @Param project query string false "project name"
// @Param channel query string false "channel name"
// @Success 200 {object} apiResponse
// @Router /api/campaigns [get]
func (h *CampaignHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListCampaignsParams{
		Limit:   limit,
		Offset:  offset,
		Project: strQueryPtr(c, "project"),
		Channel: strQueryPtr(c, "channel"),
		OrderBy: "created_at",
		Asc:     boolPtr(false),
	}
	items, err := h.Repo.ListCampaigns(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountCampaigns(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

// @Summary Create campaign
// @Tags campaigns
// @Param body body campaignRequest true "campaign"
// @Success 200 {object} apiResponse
// @Router /api/campaigns [post]
func (h *CampaignHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item := &models.Campaign{ID: uuid.NewString()}
	req.apply(item)
	if err := h.Repo.CreateCampaign(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, item, nil)
}

func (h *CampaignHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	item, err := h.Repo.GetCampaignByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "campaign not found", nil)
		return
	}
	Ok(c, item, nil)
}

func (h *CampaignHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	item, err := h.Repo.GetCampaignByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "campaign not found", nil)
		return
	}
	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	req.apply(item)
	if err := h.Repo.UpdateCampaign(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, item, nil)
}

func (h *CampaignHandler) remove(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if err := h.Repo.DeleteCampaign(c.Request.Context(), id); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, gin.H{"deleted": id}, nil)
}
