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

type LeadHandler struct {
	Repo    repository.Repository
	Reports *service.ROIReportService
}

func (h *LeadHandler) Register(r *gin.Engine) {
	group := r.Group("/api/leads")
	group.GET("", h.list)
	group.POST("", h.create)
	group.GET("/:id", h.get)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

type leadRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Status      string   `json:"status"`
	CreatedDate string   `json:"created_date"`
	SourceLabel string   `json:"source_label"`
	ProjectTags []string `json:"project_tags"`
	Region      string   `json:"region"`
	Remarks     string   `json:"remarks"`
	Phone       string   `json:"phone"`
}

func validCategory(v string) bool {
	switch v {
	case models.CategoryBuyer, models.CategoryRenter, models.CategorySeller, models.CategoryLandlord:
		return true
	}
	return false
}

func validStatus(v string) bool {
	switch v {
	case models.StatusNew, models.StatusContacting, models.StatusCommissioned, models.StatusClosed, models.StatusLost:
		return true
	}
	return false
}

func (r leadRequest) apply(item *models.Lead) error {
	item.Name = strings.TrimSpace(r.Name)
	item.Category = strings.TrimSpace(r.Category)
	item.Status = strings.TrimSpace(r.Status)
	if item.Status == "" {
		item.Status = models.StatusNew
	}
	item.CreatedDate = strings.TrimSpace(r.CreatedDate)
	item.SourceLabel = strings.TrimSpace(r.SourceLabel)
	item.Region = strings.TrimSpace(r.Region)
	item.Remarks = strings.TrimSpace(r.Remarks)
	item.Phone = strings.TrimSpace(r.Phone)
	if r.ProjectTags != nil {
		raw, err := json.Marshal(r.ProjectTags)
		if err != nil {
			return err
		}
		item.ProjectTags = datatypes.JSON(raw)
	}
	return nil
}

// @Summary List leads
// @Tags leads
// @Param category query string false "買方/租方/賣方/屋主"
// @Param status query string false "新進/接洽中/委託/成交/無效"
// @Param keyword query string false "name, phone or remarks substring"
// @Success 200 {object} apiResponse
// @Router /api/leads [get]
func (h *LeadHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListLeadsParams{
		Limit:    limit,
		Offset:   offset,
		Category: strQueryPtr(c, "category"),
		Status:   strQueryPtr(c, "status"),
		Keyword:  strQueryPtr(c, "keyword"),
		OrderBy:  "created_at",
		Asc:      boolPtr(false),
	}
	items, err := h.Repo.ListLeads(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountLeads(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

// @Summary Create lead
// @Tags leads
// @Param body body leadRequest true "lead"
// @Success 200 {object} apiResponse
// @Router /api/leads [post]
func (h *LeadHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !validCategory(strings.TrimSpace(req.Category)) {
		Error(c, http.StatusBadRequest, "unknown category", nil)
		return
	}
	if req.Status != "" && !validStatus(strings.TrimSpace(req.Status)) {
		Error(c, http.StatusBadRequest, "unknown status", nil)
		return
	}
	item := &models.Lead{ID: uuid.NewString()}
	if err := req.apply(item); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := h.Repo.CreateLead(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, item, nil)
}

func (h *LeadHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	item, err := h.Repo.GetLeadByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "lead not found", nil)
		return
	}
	Ok(c, item, nil)
}

func (h *LeadHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	item, err := h.Repo.GetLeadByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "lead not found", nil)
		return
	}
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !validCategory(strings.TrimSpace(req.Category)) {
		Error(c, http.StatusBadRequest, "unknown category", nil)
		return
	}
	if req.Status != "" && !validStatus(strings.TrimSpace(req.Status)) {
		Error(c, http.StatusBadRequest, "unknown status", nil)
		return
	}
	if err := req.apply(item); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := h.Repo.UpdateLead(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, item, nil)
}

func (h *LeadHandler) remove(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if err := h.Repo.DeleteLead(c.Request.Context(), id); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	h.Reports.InvalidateCache(c.Request.Context())
	Ok(c, gin.H{"deleted": id}, nil)
}
