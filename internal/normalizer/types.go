package normalizer

import "botguard-srv/internal/model"

// Built-in rule names, in application order.
const (
	RuleNormalizePlatform    = "normalize_platform"
	RuleTrimStringFields     = "trim_string_fields"
	RuleEnsureIntegerMetrics = "ensure_integer_metrics"
	RuleCapExtremeValues     = "cap_extreme_values"
	RuleEnsureTimestamp      = "ensure_timestamp"
)

// RawSample is a loosely-typed engagement sample as delivered by the
// platform scrapers. Pointer and interface fields distinguish absent from
// zero; counters may arrive as numbers or numeric strings, timestamps as
// RFC3339 strings or unix seconds/milliseconds.
type RawSample struct {
	ID         *string `json:"id,omitempty"`
	PromoterID *string `json:"promoter_id,omitempty"`
	CampaignID *string `json:"campaign_id,omitempty"`
	Platform   *string `json:"platform,omitempty"`
	ContentID  *string `json:"content_id,omitempty"`

	ViewCount    interface{} `json:"view_count,omitempty"`
	LikeCount    interface{} `json:"like_count,omitempty"`
	CommentCount interface{} `json:"comment_count,omitempty"`
	ShareCount   interface{} `json:"share_count,omitempty"`

	Timestamp interface{} `json:"timestamp,omitempty"`
}

// Rule is a typed normalization rule descriptor. Rules are applied in
// registration order; Apply mutates the sample in place and reports whether
// it changed anything.
type Rule struct {
	Name    string
	Field   string
	Enabled bool
	Apply   func(s *RawSample) bool
}

// NormalizeOutput is the result of normalizing one sample. AppliedRules
// lists the enabled rules that actually modified the sample.
type NormalizeOutput struct {
	Sample       RawSample        `json:"sample"`
	Record       model.ViewRecord `json:"record"`
	AppliedRules []string         `json:"applied_rules"`
}

// RuleInfo is the listing view of a registered rule.
type RuleInfo struct {
	Name    string `json:"name"`
	Field   string `json:"field"`
	Enabled bool   `json:"enabled"`
}

// FieldChange describes one field modification a rule would make.
type FieldChange struct {
	Rule   string `json:"rule"`
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// PreviewOutput lists the changes normalization would apply to a sample.
type PreviewOutput struct {
	Changes []FieldChange `json:"changes"`
}
