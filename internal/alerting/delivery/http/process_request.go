package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processListAlertsRequest(c *gin.Context) (listAlertsReq, error) {
	var req listAlertsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "alerting.delivery.http.processListAlertsRequest: ShouldBindQuery failed: %v", err)
		return req, err
	}

	return req, nil
}

func (h *handler) alertIDParam(c *gin.Context) string {
	return c.Param("alert_id")
}
