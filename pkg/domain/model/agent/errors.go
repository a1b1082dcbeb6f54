package agent

import "errors"

var (
	ErrEmptyMessage = errors.New("message is empty")
)
