package http

import (
	"botguard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze view records for bot activity
// @Description Score a batch of view records for one promoter/campaign pair. Set process=true to feed the verdict through the alerting pipeline.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Analysis request"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analysis [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	a := h.uc.Analyze(ctx, req.toInput())

	if req.Process {
		h.monitoringUC.ProcessAnalysis(ctx, a)
	}

	response.OK(c, h.newAnalyzeResp(a))
}
