//go:generate go run github.com/matryer/moq@latest -pkg mock -out ../mock/mock.go . SlackClient Agent

package interfaces

import (
	"context"
)

// SlackClient abstracts the Slack Web API operations the orchestrator needs
type SlackClient interface {
	// PostMessage posts text to a channel, threaded under threadTS when set
	PostMessage(ctx context.Context, channelID, threadTS, text string) error

	// IsBotUser reports whether the user ID is the bot's own identity
	IsBotUser(userID string) bool

	// BotUserID returns the bot's own user ID
	BotUserID() string

	// IsThreadOpenedByBot reports whether the thread rooted at threadTS was
	// opened by a message mentioning the bot.
	IsThreadOpenedByBot(ctx context.Context, channelID, threadTS string) (bool, error)
}
