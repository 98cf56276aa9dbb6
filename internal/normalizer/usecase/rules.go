package usecase

import (
	"strconv"
	"strings"
	"time"

	"botguard-srv/internal/normalizer"
)

// builtinRules returns the default rule set in its fixed application order.
func builtinRules(extremeValueCap int64) []*normalizer.Rule {
	return []*normalizer.Rule{
		{
			Name:    normalizer.RuleNormalizePlatform,
			Field:   "platform",
			Enabled: true,
			Apply:   applyNormalizePlatform,
		},
		{
			Name:    normalizer.RuleTrimStringFields,
			Field:   "*",
			Enabled: true,
			Apply:   applyTrimStringFields,
		},
		{
			Name:    normalizer.RuleEnsureIntegerMetrics,
			Field:   "metrics",
			Enabled: true,
			Apply:   applyEnsureIntegerMetrics,
		},
		{
			Name:    normalizer.RuleCapExtremeValues,
			Field:   "metrics",
			Enabled: true,
			Apply:   applyCapExtremeValues(extremeValueCap),
		},
		{
			Name:    normalizer.RuleEnsureTimestamp,
			Field:   "timestamp",
			Enabled: true,
			Apply:   applyEnsureTimestamp,
		},
	}
}

func applyNormalizePlatform(s *normalizer.RawSample) bool {
	if s.Platform == nil {
		return false
	}
	normalized := strings.ToLower(strings.TrimSpace(*s.Platform))
	if normalized == *s.Platform {
		return false
	}
	s.Platform = &normalized
	return true
}

func applyTrimStringFields(s *normalizer.RawSample) bool {
	changed := false
	for _, field := range []**string{&s.ID, &s.PromoterID, &s.CampaignID, &s.ContentID} {
		if *field == nil {
			continue
		}
		trimmed := strings.TrimSpace(**field)
		if trimmed != **field {
			*field = &trimmed
			changed = true
		}
	}
	return changed
}

func applyEnsureIntegerMetrics(s *normalizer.RawSample) bool {
	changed := false
	for _, field := range []*interface{}{&s.ViewCount, &s.LikeCount, &s.CommentCount, &s.ShareCount} {
		if *field == nil {
			continue
		}
		coerced := coerceToInt64(*field)
		if prev, ok := (*field).(int64); !ok || prev != coerced {
			*field = coerced
			changed = true
		}
	}
	return changed
}

// applyCapExtremeValues clamps already-coerced counters so a single corrupt
// sample cannot dominate scoring. Values that are still loosely typed
// (ensure_integer_metrics disabled) are left alone.
func applyCapExtremeValues(maxValue int64) func(s *normalizer.RawSample) bool {
	return func(s *normalizer.RawSample) bool {
		changed := false
		for _, field := range []*interface{}{&s.ViewCount, &s.LikeCount, &s.CommentCount, &s.ShareCount} {
			if *field == nil {
				continue
			}
			v, ok := (*field).(int64)
			if !ok || v <= maxValue {
				continue
			}
			*field = maxValue
			changed = true
		}
		return changed
	}
}

func applyEnsureTimestamp(s *normalizer.RawSample) bool {
	if _, ok := s.Timestamp.(time.Time); ok {
		return false
	}

	parsed, ok := parseTimestamp(s.Timestamp)
	if !ok {
		parsed = time.Now().UTC()
	}
	s.Timestamp = parsed
	return true
}

// coerceToInt64 converts numbers and numeric strings to a non-negative
// int64. Unparseable or negative values collapse to 0.
func coerceToInt64(v interface{}) int64 {
	var n int64
	switch t := v.(type) {
	case int64:
		n = t
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case float64:
		n = int64(t)
	case float32:
		n = int64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		n = int64(f)
	default:
		return 0
	}

	if n < 0 {
		return 0
	}
	return n
}

// parseTimestamp accepts time.Time, RFC3339 strings and unix seconds or
// milliseconds (numbers above 1e12 are treated as milliseconds).
func parseTimestamp(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(t))
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	case float64:
		return unixToTime(int64(t)), true
	case int64:
		return unixToTime(t), true
	case int:
		return unixToTime(int64(t)), true
	default:
		return time.Time{}, false
	}
}

func unixToTime(n int64) time.Time {
	if n > 1_000_000_000_000 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}
