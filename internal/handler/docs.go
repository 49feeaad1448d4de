package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Estate CRM Revenue Service

Revenue attribution and commission distribution for the agency CRM.

## Reports

- GET /api/reports/roi?window=month&year=2025&month=3
- GET /api/reports/roi?window=custom&start=2025-03-01&end=2025-03-10
- GET /api/reports/snapshots?period=2025-03

## Records

- GET/POST /api/leads, GET/PUT/DELETE /api/leads/:id
- GET/POST /api/deals, GET/PUT/DELETE /api/deals/:id
- GET /api/deals/:id/distribution
- POST /api/deals/preview-distribution
- GET/POST /api/campaigns, GET/PUT/DELETE /api/campaigns/:id

## Settings

- GET/PUT /api/settings/rates
- GET/PUT /api/settings/switches/:name

## Ops

- GET /healthz, GET /readyz
- GET /metrics
- GET /swagger/index.html

Dates and amounts on leads, deals and campaigns are stored exactly as
entered. Records whose dates or amounts do not parse stay visible in the
record endpoints but are excluded from report aggregates.
`)
	})
}
