package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"estatecrm/internal/models"
	"estatecrm/internal/repository"
	"estatecrm/internal/service"
)

type DealHandler struct {
	Repo       repository.Repository
	Commission *service.CommissionService
	Reports    *service.ROIReportService
}

func (h *DealHandler) Register(r *gin.Engine) {
	group := r.Group("/api/deals")
	group.GET("", h.list)
	group.POST("", h.create)
	group.POST("/preview-distribution", h.preview)
	group.GET("/:id", h.get)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
	group.GET("/:id/distribution", h.distribution)
}

type dealRequest struct {
	LeadID      *string             `json:"lead_id"`
	ProjectName string              `json:"project_name"`
	CloseDate   string              `json:"close_date"`
	FeeBuyer    string              `json:"fee_buyer"`
	FeeSeller   string              `json:"fee_seller"`
	FeeRenter   string              `json:"fee_renter"`
	FeeLandlord string              `json:"fee_landlord"`
	Deduction   string              `json:"deduction"`
	Agents      []models.AgentShare `json:"agents"`
}

func (r dealRequest) apply(item *models.Deal) error {
	item.LeadID = r.LeadID
	item.ProjectName = strings.TrimSpace(r.ProjectName)
	item.CloseDate = strings.TrimSpace(r.CloseDate)
	item.FeeBuyer = strings.TrimSpace(r.FeeBuyer)
	item.FeeSeller = strings.TrimSpace(r.FeeSeller)
	item.FeeRenter = strings.TrimSpace(r.FeeRenter)
	item.FeeLandlord = strings.TrimSpace(r.FeeLandlord)
	item.Deduction = strings.TrimSpace(r.Deduction)
	if r.Agents != nil {
		raw, err := json.Marshal(r.Agents)
		if err != nil {
			return err
		}
		item.Distributions = datatypes.JSON(raw)
	}
	return nil
}

func (r dealRequest) toDeal() (models.Deal, error) {
	var item models.Deal
	err := r.apply(&item)
	return item, err
}

// @Summary List deals
// @Tags deals
// @Param project query string false "project name"
// @Success 200 {object} apiResponse
// @Router /api/deals [get]
func (h *DealHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListDealsParams{
		Limit:   limit,
		Offset:  offset,
		Project: strQueryPtr(c, "project"),
		OrderBy: "created_at",
		Asc:     boolPtr(false),
	}
	items, err := h.Repo.ListDeals(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountDeals(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

// @Summary Create deal
// @Tags deals
// @Param body body dealRequest true "deal"
// @Success 200 {object} apiResponse
// @Router /api/deals [post]
func (h *DealHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req dealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item := &models.Deal{ID: uuid.NewString()}
	if err := req.apply(item); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := h.Repo.CreateDeal(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, item, nil)
}

func (h *DealHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	item, err := h.Repo.GetDealByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "deal not found", nil)
		return
	}
	Ok(c, item, nil)
}

func (h *DealHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	item, err := h.Repo.GetDealByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "deal not found", nil)
		return
	}
	var req dealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := req.apply(item); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := h.Repo.UpdateDeal(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, item, nil)
}

func (h *DealHandler) remove(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if err := h.Repo.DeleteDeal(c.Request.Context(), id); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, gin.H{"deleted": id}, nil)
}

// @Summary Commission distribution for a deal
// @Tags deals
// @Param id path string true "deal id"
// @Success 200 {object} apiResponse
// @Router /api/deals/{id}/distribution [get]
func (h *DealHandler) distribution(c *gin.Context) {
	if h.Commission == nil {
		Error(c, http.StatusInternalServerError, "commission service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	dist, err := h.Commission.DistributionForDeal(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusNotFound, err.Error(), nil)
		return
	}
	Ok(c, dist, nil)
}

// @Summary Preview distribution for an unsaved deal
// @Tags deals
// @Param body body dealRequest true "deal draft"
// @Success 200 {object} apiResponse
// @Router /api/deals/preview-distribution [post]
func (h *DealHandler) preview(c *gin.Context) {
	if h.Commission == nil {
		Error(c, http.StatusInternalServerError, "commission service unavailable", nil)
		return
	}
	var req dealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	deal, err := req.toDeal()
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, h.Commission.PreviewDistribution(c.Request.Context(), deal), nil)
}
