package normalizer

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Normalize applies all enabled rules to one raw sample and converts it
	// to a ViewRecord. Never fails; missing fields are skipped silently.
	Normalize(ctx context.Context, sample RawSample) NormalizeOutput
	NormalizeBatch(ctx context.Context, samples []RawSample) []NormalizeOutput

	// Preview reports the field-level changes the rules would make without
	// touching registry state.
	Preview(ctx context.Context, sample RawSample) PreviewOutput

	AddRule(ctx context.Context, rule Rule) error
	EnableRule(ctx context.Context, name string) error
	DisableRule(ctx context.Context, name string) error
	Rules(ctx context.Context) []RuleInfo
}
