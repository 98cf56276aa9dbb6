package http

import (
	"botguard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Preview normalization of a raw sample
// @Description Return the field-level changes the enabled rules would make without mutating anything
// @Tags Normalizer
// @Accept json
// @Produce json
// @Param body body previewReq true "Raw engagement sample"
// @Success 200 {object} previewResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/normalizer/preview [post]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "normalizer.delivery.http.Preview: processPreviewRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o := h.uc.Preview(ctx, req.toSample())

	response.OK(c, h.newPreviewResp(o))
}

// @Summary List normalization rules
// @Description Return the registered rules in application order
// @Tags Normalizer
// @Produce json
// @Success 200 {object} listRulesResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/normalizer/rules [get]
func (h *handler) ListRules(c *gin.Context) {
	ctx := c.Request.Context()

	rules := h.uc.Rules(ctx)

	response.OK(c, h.newListRulesResp(rules))
}

// @Summary Enable a normalization rule
// @Tags Normalizer
// @Produce json
// @Param rule_name path string true "Rule name"
// @Success 200 {object} ruleToggleResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/normalizer/rules/{rule_name}/enable [put]
func (h *handler) EnableRule(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processRuleToggleRequest(c)
	if err := h.uc.EnableRule(ctx, req.RuleName); err != nil {
		h.l.Errorf(ctx, "normalizer.delivery.http.EnableRule: usecase EnableRule failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, ruleToggleResp{Name: req.RuleName, Enabled: true})
}

// @Summary Disable a normalization rule
// @Tags Normalizer
// @Produce json
// @Param rule_name path string true "Rule name"
// @Success 200 {object} ruleToggleResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/normalizer/rules/{rule_name}/disable [put]
func (h *handler) DisableRule(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processRuleToggleRequest(c)
	if err := h.uc.DisableRule(ctx, req.RuleName); err != nil {
		h.l.Errorf(ctx, "normalizer.delivery.http.DisableRule: usecase DisableRule failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, ruleToggleResp{Name: req.RuleName, Enabled: false})
}
