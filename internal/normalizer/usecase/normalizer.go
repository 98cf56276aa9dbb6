package usecase

import (
	"context"
	"fmt"
	"time"

	"botguard-srv/internal/model"
	"botguard-srv/internal/normalizer"
)

// Normalize applies all enabled rules in registration order to a copy of the
// sample, then converts it to a ViewRecord. It never fails: absent fields are
// skipped and the record side falls back to zero values.
func (uc *implUseCase) Normalize(ctx context.Context, sample normalizer.RawSample) normalizer.NormalizeOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return uc.normalizeLocked(sample)
}

func (uc *implUseCase) NormalizeBatch(ctx context.Context, samples []normalizer.RawSample) []normalizer.NormalizeOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	outputs := make([]normalizer.NormalizeOutput, 0, len(samples))
	for _, sample := range samples {
		outputs = append(outputs, uc.normalizeLocked(sample))
	}
	return outputs
}

// Preview runs the enabled rules against a copy of the sample and reports
// the field-level changes without mutating any registry state.
func (uc *implUseCase) Preview(ctx context.Context, sample normalizer.RawSample) normalizer.PreviewOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	changes := make([]normalizer.FieldChange, 0)
	for _, rule := range uc.rules {
		if !rule.Enabled {
			continue
		}

		before := snapshotFields(sample)
		if !rule.Apply(&sample) {
			continue
		}
		after := snapshotFields(sample)

		for field, beforeVal := range before {
			if afterVal := after[field]; afterVal != beforeVal {
				changes = append(changes, normalizer.FieldChange{
					Rule:   rule.Name,
					Field:  field,
					Before: beforeVal,
					After:  afterVal,
				})
			}
		}
	}

	return normalizer.PreviewOutput{Changes: changes}
}

// normalizeLocked assumes at least a read lock on uc.mu.
func (uc *implUseCase) normalizeLocked(sample normalizer.RawSample) normalizer.NormalizeOutput {
	applied := make([]string, 0, len(uc.rules))
	for _, rule := range uc.rules {
		if !rule.Enabled {
			continue
		}
		if rule.Apply(&sample) {
			applied = append(applied, rule.Name)
		}
	}

	return normalizer.NormalizeOutput{
		Sample:       sample,
		Record:       toViewRecord(sample),
		AppliedRules: applied,
	}
}

func toViewRecord(sample normalizer.RawSample) model.ViewRecord {
	record := model.ViewRecord{
		ID:           strValue(sample.ID),
		PromoterID:   strValue(sample.PromoterID),
		CampaignID:   strValue(sample.CampaignID),
		Platform:     strValue(sample.Platform),
		ContentID:    strValue(sample.ContentID),
		ViewCount:    countValue(sample.ViewCount),
		LikeCount:    countValue(sample.LikeCount),
		CommentCount: countValue(sample.CommentCount),
		ShareCount:   countValue(sample.ShareCount),
	}

	if ts, ok := sample.Timestamp.(time.Time); ok {
		record.Timestamp = ts
	} else if parsed, ok := parseTimestamp(sample.Timestamp); ok {
		record.Timestamp = parsed
	} else {
		record.Timestamp = time.Now().UTC()
	}

	return record
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// countValue converts a possibly still loosely-typed counter to int64.
// Truncation here does not affect the normalized sample itself.
func countValue(v interface{}) int64 {
	if v == nil {
		return 0
	}
	return coerceToInt64(v)
}

// snapshotFields renders every sample field to a printable string for diffing.
func snapshotFields(s normalizer.RawSample) map[string]string {
	fields := map[string]string{
		"id":          strValue(s.ID),
		"promoter_id": strValue(s.PromoterID),
		"campaign_id": strValue(s.CampaignID),
		"platform":    strValue(s.Platform),
		"content_id":  strValue(s.ContentID),
	}
	for name, v := range map[string]interface{}{
		"view_count":    s.ViewCount,
		"like_count":    s.LikeCount,
		"comment_count": s.CommentCount,
		"share_count":   s.ShareCount,
		"timestamp":     s.Timestamp,
	} {
		if v == nil {
			fields[name] = ""
			continue
		}
		fields[name] = fmt.Sprintf("%v", v)
	}
	return fields
}
