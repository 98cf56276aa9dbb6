package repository

import "errors"

var (
	ErrSummaryNotFound    = errors.New("repository: summary not found")
	ErrSummaryWriteFailed = errors.New("repository: failed to write summary")
)
