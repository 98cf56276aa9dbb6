package repository

import "errors"

var (
	ErrAlertNotFound     = errors.New("repository: alert not found")
	ErrAlertCreateFailed = errors.New("repository: failed to create alert")
	ErrAlertUpdateFailed = errors.New("repository: failed to update alert")
	ErrAuditWriteFailed  = errors.New("repository: failed to write audit entry")
)
