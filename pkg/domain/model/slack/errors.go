package slack

import "errors"

var (
	// Message errors
	ErrEmptyChannelID = errors.New("channel ID is empty")
	ErrEmptyText      = errors.New("message text is empty")
	ErrEmptyTimestamp = errors.New("message timestamp is empty")

	// Verification errors
	ErrInvalidSignature = errors.New("invalid signature")
	ErrStaleTimestamp   = errors.New("request timestamp is too old")
)
