package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.processAnalyzeRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}
