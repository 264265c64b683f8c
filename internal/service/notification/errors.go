package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrEmptyMessage         = errors.New("empty notification message")
)
