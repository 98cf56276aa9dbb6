package http

import (
	"botguard-srv/internal/alerting"
	"botguard-srv/pkg/response"
	"botguard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List alerts
// @Description Return alerts filtered by promoter, campaign, severity and acknowledgement state
// @Tags Alerting
// @Produce json
// @Param promoter_id query string false "Promoter ID"
// @Param campaign_id query string false "Campaign ID"
// @Param severity query string false "Alert severity (CRITICAL | HIGH | MEDIUM | LOW)"
// @Param unacknowledged query bool false "Only unacknowledged alerts"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listAlertsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts [get]
func (h *handler) ListAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListAlertsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alerting.delivery.http.ListAlerts: processListAlertsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.ListAlerts(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "alerting.delivery.http.ListAlerts: ListAlerts failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListAlertsResp(o))
}

// @Summary Get one alert
// @Tags Alerting
// @Produce json
// @Param alert_id path string true "Alert ID"
// @Success 200 {object} alertItem
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/{alert_id} [get]
func (h *handler) GetAlert(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	alert, err := h.uc.GetAlert(ctx, sc, h.alertIDParam(c))
	if err != nil {
		h.l.Errorf(ctx, "alerting.delivery.http.GetAlert: GetAlert failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAlertItem(alert))
}

// @Summary Acknowledge an alert
// @Description Mark an alert as seen by the calling operator
// @Tags Alerting
// @Produce json
// @Param alert_id path string true "Alert ID"
// @Success 200 {object} alertStateResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/{alert_id}/acknowledge [put]
func (h *handler) Acknowledge(c *gin.Context) {
	ctx := c.Request.Context()
	alertID := h.alertIDParam(c)

	sc := scope.GetScopeFromContext(ctx)
	updated, err := h.uc.Acknowledge(ctx, sc, alerting.AcknowledgeInput{AlertID: alertID})
	if err != nil {
		h.l.Errorf(ctx, "alerting.delivery.http.Acknowledge: Acknowledge failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, alertStateResp{ID: alertID, Updated: updated})
}

// @Summary Resolve an alert
// @Description Mark an alert resolved; resolved is terminal
// @Tags Alerting
// @Produce json
// @Param alert_id path string true "Alert ID"
// @Success 200 {object} alertStateResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/{alert_id}/resolve [put]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()
	alertID := h.alertIDParam(c)

	sc := scope.GetScopeFromContext(ctx)
	updated, err := h.uc.Resolve(ctx, sc, alerting.ResolveInput{AlertID: alertID})
	if err != nil {
		h.l.Errorf(ctx, "alerting.delivery.http.Resolve: Resolve failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, alertStateResp{ID: alertID, Updated: updated})
}
