package alerting

import "errors"

var (
	ErrAlertNotFound   = errors.New("alert not found")
	ErrInvalidSeverity = errors.New("invalid alert severity")
)
