package http

import (
	"botguard-srv/internal/normalizer"
)

type previewReq struct {
	Sample normalizer.RawSample `json:"sample" binding:"required"`
}

func (r previewReq) toSample() normalizer.RawSample {
	return r.Sample
}

type ruleToggleReq struct {
	RuleName string
}

type fieldChangeResp struct {
	Rule   string `json:"rule"`
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

type previewResp struct {
	Changes []fieldChangeResp `json:"changes"`
}

func (h *handler) newPreviewResp(o normalizer.PreviewOutput) previewResp {
	changes := make([]fieldChangeResp, 0, len(o.Changes))
	for _, ch := range o.Changes {
		changes = append(changes, fieldChangeResp{
			Rule:   ch.Rule,
			Field:  ch.Field,
			Before: ch.Before,
			After:  ch.After,
		})
	}
	return previewResp{Changes: changes}
}

type ruleResp struct {
	Name    string `json:"name"`
	Field   string `json:"field"`
	Enabled bool   `json:"enabled"`
}

type listRulesResp struct {
	Rules []ruleResp `json:"rules"`
}

func (h *handler) newListRulesResp(rules []normalizer.RuleInfo) listRulesResp {
	resp := listRulesResp{Rules: make([]ruleResp, 0, len(rules))}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, ruleResp{
			Name:    rule.Name,
			Field:   rule.Field,
			Enabled: rule.Enabled,
		})
	}
	return resp
}

type ruleToggleResp struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
