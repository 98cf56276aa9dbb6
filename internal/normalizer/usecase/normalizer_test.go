package usecase

import (
	"context"
	"testing"
	"time"

	"botguard-srv/internal/normalizer"
	"botguard-srv/pkg/log"
)

func strPtr(s string) *string { return &s }

func newTestUseCase() normalizer.UseCase {
	return New(log.NewNoop(), Config{})
}

func TestNormalize(t *testing.T) {
	ctx := context.Background()

	t.Run("platform and float views", func(t *testing.T) {
		uc := newTestUseCase()

		out := uc.Normalize(ctx, normalizer.RawSample{
			Platform:  strPtr("  TIKTOK  "),
			ViewCount: 1000.7,
		})

		if got := *out.Sample.Platform; got != "tiktok" {
			t.Errorf("Platform mismatch: got %q, want %q", got, "tiktok")
		}
		if got, ok := out.Sample.ViewCount.(int64); !ok || got != 1000 {
			t.Errorf("ViewCount mismatch: got %v, want 1000", out.Sample.ViewCount)
		}
		if !containsRule(out.AppliedRules, normalizer.RuleNormalizePlatform) {
			t.Errorf("AppliedRules missing %s: %v", normalizer.RuleNormalizePlatform, out.AppliedRules)
		}
		if !containsRule(out.AppliedRules, normalizer.RuleEnsureIntegerMetrics) {
			t.Errorf("AppliedRules missing %s: %v", normalizer.RuleEnsureIntegerMetrics, out.AppliedRules)
		}
	})

	t.Run("disabled rule leaves value unchanged", func(t *testing.T) {
		uc := newTestUseCase()

		if err := uc.DisableRule(ctx, normalizer.RuleEnsureIntegerMetrics); err != nil {
			t.Fatalf("DisableRule failed: %v", err)
		}

		out := uc.Normalize(ctx, normalizer.RawSample{ViewCount: 1000.7})

		if got, ok := out.Sample.ViewCount.(float64); !ok || got != 1000.7 {
			t.Errorf("ViewCount mismatch: got %v, want 1000.7", out.Sample.ViewCount)
		}
		if containsRule(out.AppliedRules, normalizer.RuleEnsureIntegerMetrics) {
			t.Errorf("AppliedRules should not contain disabled rule: %v", out.AppliedRules)
		}
	})

	t.Run("idempotent on already normalized sample", func(t *testing.T) {
		uc := newTestUseCase()

		first := uc.Normalize(ctx, normalizer.RawSample{
			PromoterID: strPtr("  promoter-1 "),
			Platform:   strPtr("Instagram"),
			ViewCount:  "500",
			Timestamp:  "2026-08-20T10:00:00Z",
		})
		second := uc.Normalize(ctx, first.Sample)

		if got := *second.Sample.Platform; got != *first.Sample.Platform {
			t.Errorf("Platform changed on second pass: got %q, want %q", got, *first.Sample.Platform)
		}
		if second.Sample.ViewCount != first.Sample.ViewCount {
			t.Errorf("ViewCount changed on second pass: got %v, want %v", second.Sample.ViewCount, first.Sample.ViewCount)
		}
		if len(second.AppliedRules) != 0 {
			t.Errorf("second pass should apply no rules, got %v", second.AppliedRules)
		}
	})

	t.Run("missing fields are skipped", func(t *testing.T) {
		uc := newTestUseCase()

		out := uc.Normalize(ctx, normalizer.RawSample{})

		if out.Record.ViewCount != 0 || out.Record.LikeCount != 0 {
			t.Errorf("empty sample should produce zero counts, got %+v", out.Record)
		}
		if out.Record.Timestamp.IsZero() {
			t.Error("ensure_timestamp should backfill a missing timestamp")
		}
	})

	t.Run("extreme values capped", func(t *testing.T) {
		uc := New(log.NewNoop(), Config{ExtremeValueCap: 1_000_000})

		out := uc.Normalize(ctx, normalizer.RawSample{ViewCount: int64(5_000_000)})

		if got, _ := out.Sample.ViewCount.(int64); got != 1_000_000 {
			t.Errorf("ViewCount mismatch: got %d, want 1000000", got)
		}
		if !containsRule(out.AppliedRules, normalizer.RuleCapExtremeValues) {
			t.Errorf("AppliedRules missing %s: %v", normalizer.RuleCapExtremeValues, out.AppliedRules)
		}
	})

	t.Run("negative and unparseable counts collapse to zero", func(t *testing.T) {
		uc := newTestUseCase()

		out := uc.Normalize(ctx, normalizer.RawSample{
			ViewCount: int64(-50),
			LikeCount: "not-a-number",
		})

		if got, _ := out.Sample.ViewCount.(int64); got != 0 {
			t.Errorf("negative ViewCount should collapse to 0, got %d", got)
		}
		if got, _ := out.Sample.LikeCount.(int64); got != 0 {
			t.Errorf("unparseable LikeCount should collapse to 0, got %d", got)
		}
	})

	t.Run("unix millisecond timestamp parsed", func(t *testing.T) {
		uc := newTestUseCase()

		want := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
		out := uc.Normalize(ctx, normalizer.RawSample{Timestamp: float64(want.UnixMilli())})

		if !out.Record.Timestamp.Equal(want) {
			t.Errorf("Timestamp mismatch: got %v, want %v", out.Record.Timestamp, want)
		}
	})
}

func TestPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("reports changes without mutating state", func(t *testing.T) {
		uc := newTestUseCase()

		sample := normalizer.RawSample{Platform: strPtr(" TikTok ")}
		out := uc.Preview(ctx, sample)

		if len(out.Changes) == 0 {
			t.Fatal("Preview should report at least one change")
		}
		found := false
		for _, ch := range out.Changes {
			if ch.Rule == normalizer.RuleNormalizePlatform && ch.Field == "platform" {
				if ch.After != "tiktok" {
					t.Errorf("After mismatch: got %q, want %q", ch.After, "tiktok")
				}
				found = true
			}
		}
		if !found {
			t.Errorf("Preview missing platform change: %+v", out.Changes)
		}
		if got := *sample.Platform; got != " TikTok " {
			t.Errorf("Preview mutated the caller's sample: %q", got)
		}
	})

	t.Run("clean sample yields no changes", func(t *testing.T) {
		uc := newTestUseCase()

		out := uc.Preview(ctx, normalizer.RawSample{
			Platform:  strPtr("tiktok"),
			ViewCount: int64(100),
			Timestamp: time.Now(),
		})

		if len(out.Changes) != 0 {
			t.Errorf("clean sample should yield no changes, got %+v", out.Changes)
		}
	})
}

func TestRuleRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown rule returns sentinel error", func(t *testing.T) {
		uc := newTestUseCase()

		if err := uc.EnableRule(ctx, "no_such_rule"); err != normalizer.ErrRuleNotFound {
			t.Errorf("EnableRule error mismatch: got %v, want %v", err, normalizer.ErrRuleNotFound)
		}
		if err := uc.DisableRule(ctx, "no_such_rule"); err != normalizer.ErrRuleNotFound {
			t.Errorf("DisableRule error mismatch: got %v, want %v", err, normalizer.ErrRuleNotFound)
		}
	})

	t.Run("builtin rules listed in order", func(t *testing.T) {
		uc := newTestUseCase()

		rules := uc.Rules(ctx)
		wantOrder := []string{
			normalizer.RuleNormalizePlatform,
			normalizer.RuleTrimStringFields,
			normalizer.RuleEnsureIntegerMetrics,
			normalizer.RuleCapExtremeValues,
			normalizer.RuleEnsureTimestamp,
		}

		if len(rules) != len(wantOrder) {
			t.Fatalf("rule count mismatch: got %d, want %d", len(rules), len(wantOrder))
		}
		for i, want := range wantOrder {
			if rules[i].Name != want {
				t.Errorf("rule order mismatch at %d: got %s, want %s", i, rules[i].Name, want)
			}
			if !rules[i].Enabled {
				t.Errorf("builtin rule %s should start enabled", want)
			}
		}
	})

	t.Run("add custom rule", func(t *testing.T) {
		uc := newTestUseCase()

		rule := normalizer.Rule{
			Name:    "force_platform",
			Field:   "platform",
			Enabled: true,
			Apply: func(s *normalizer.RawSample) bool {
				p := "tiktok"
				s.Platform = &p
				return true
			},
		}
		if err := uc.AddRule(ctx, rule); err != nil {
			t.Fatalf("AddRule failed: %v", err)
		}
		if err := uc.AddRule(ctx, rule); err != normalizer.ErrRuleExists {
			t.Errorf("duplicate AddRule error mismatch: got %v, want %v", err, normalizer.ErrRuleExists)
		}

		out := uc.Normalize(ctx, normalizer.RawSample{})
		if got := *out.Sample.Platform; got != "tiktok" {
			t.Errorf("custom rule not applied: got %q", got)
		}
	})
}

func containsRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}
