package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/engine"
	"estatecrm/internal/repository"
	"estatecrm/internal/service"
)

type ReportHandler struct {
	Repo    repository.Repository
	Reports *service.ROIReportService
}

func (h *ReportHandler) Register(r *gin.Engine) {
	group := r.Group("/api/reports")
	group.GET("/roi", h.roi)
	group.GET("/snapshots", h.snapshots)
}

var periodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// @Summary Marketing ROI report
// @Tags reports
// @Param window query string false "month|year|week|all|custom" default(month)
// @Param year query int false "year for month/year/week windows"
// @Param month query int false "1-12"
// @Param week query int false "ISO week number"
// @Param start query string false "custom window start, YYYY-MM-DD"
// @Param end query string false "custom window end, YYYY-MM-DD"
// @Success 200 {object} apiResponse
// @Router /api/reports/roi [get]
func (h *ReportHandler) roi(c *gin.Context) {
	if h.Reports == nil {
		Error(c, http.StatusInternalServerError, "report service unavailable", nil)
		return
	}
	spec := engine.WindowSpec{
		Kind:  strings.TrimSpace(c.DefaultQuery("window", engine.WindowMonth)),
		Year:  intQuery(c, "year", 0),
		Month: intQuery(c, "month", 0),
		Week:  intQuery(c, "week", 0),
		Start: strings.TrimSpace(c.Query("start")),
		End:   strings.TrimSpace(c.Query("end")),
	}
	report, err := h.Reports.BuildReport(c.Request.Context(), spec)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, report, nil)
}

// @Summary Materialized monthly ROI rows
// @Tags reports
// @Param period query string true "calendar month, YYYY-MM"
// @Success 200 {object} apiResponse
// @Router /api/reports/snapshots [get]
func (h *ReportHandler) snapshots(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	period := strings.TrimSpace(c.Query("period"))
	if !periodPattern.MatchString(period) {
		Error(c, http.StatusBadRequest, "period must be YYYY-MM", nil)
		return
	}
	rows, err := h.Repo.ListROISnapshots(c.Request.Context(), period)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, rows, map[string]any{"period": period, "rows": len(rows)})
}
