package normalizer

import "errors"

var (
	ErrRuleNotFound      = errors.New("normalization rule not found")
	ErrRuleExists        = errors.New("normalization rule already registered")
	ErrRuleNameRequired  = errors.New("normalization rule name is required")
	ErrRuleApplyRequired = errors.New("normalization rule apply func is required")
)
