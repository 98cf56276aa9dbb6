package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processPreviewRequest(c *gin.Context) (previewReq, error) {
	var req previewReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "normalizer.delivery.http.processPreviewRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}

func (h *handler) processRuleToggleRequest(c *gin.Context) ruleToggleReq {
	return ruleToggleReq{
		RuleName: c.Param("rule_name"),
	}
}
