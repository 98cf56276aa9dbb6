package http

import (
	"botguard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get system status
// @Description Return the monitoring health snapshot (pipeline state, alert registry, performance)
// @Tags Monitoring
// @Produce json
// @Success 200 {object} statusResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/monitoring/status [get]
func (h *handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	status, err := h.uc.GetSystemStatus(ctx)
	if err != nil {
		h.l.Errorf(ctx, "monitoring.delivery.http.GetStatus: GetSystemStatus failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newStatusResp(status))
}

// @Summary Generate a summary now
// @Description Snapshot the counters into a summary and render the report artifacts
// @Tags Monitoring
// @Produce json
// @Success 200 {object} summaryResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/monitoring/summary [post]
func (h *handler) GenerateSummary(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.GenerateDailySummary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "monitoring.delivery.http.GenerateSummary: GenerateDailySummary failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newSummaryResp(summary))
}
