package usecase

import (
	"context"

	"botguard-srv/internal/normalizer"
)

// AddRule registers a custom rule at the end of the application order.
func (uc *implUseCase) AddRule(ctx context.Context, rule normalizer.Rule) error {
	if rule.Name == "" {
		return normalizer.ErrRuleNameRequired
	}
	if rule.Apply == nil {
		return normalizer.ErrRuleApplyRequired
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, existing := range uc.rules {
		if existing.Name == rule.Name {
			return normalizer.ErrRuleExists
		}
	}

	uc.rules = append(uc.rules, &rule)
	uc.l.Infof(ctx, "normalizer.usecase.AddRule: registered rule %s", rule.Name)
	return nil
}

func (uc *implUseCase) EnableRule(ctx context.Context, name string) error {
	return uc.setRuleEnabled(ctx, name, true)
}

func (uc *implUseCase) DisableRule(ctx context.Context, name string) error {
	return uc.setRuleEnabled(ctx, name, false)
}

func (uc *implUseCase) setRuleEnabled(ctx context.Context, name string, enabled bool) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, rule := range uc.rules {
		if rule.Name == name {
			rule.Enabled = enabled
			uc.l.Infof(ctx, "normalizer.usecase.setRuleEnabled: rule %s enabled=%t", name, enabled)
			return nil
		}
	}
	return normalizer.ErrRuleNotFound
}

// Rules lists the registered rules in application order.
func (uc *implUseCase) Rules(ctx context.Context) []normalizer.RuleInfo {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	infos := make([]normalizer.RuleInfo, 0, len(uc.rules))
	for _, rule := range uc.rules {
		infos = append(infos, normalizer.RuleInfo{
			Name:    rule.Name,
			Field:   rule.Field,
			Enabled: rule.Enabled,
		})
	}
	return infos
}
