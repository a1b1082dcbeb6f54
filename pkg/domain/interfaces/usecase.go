package interfaces

import (
	"context"

	"github.com/m-mizutani/inari/pkg/domain/model/slack"
)

// SlackEventUseCases handles normalized Slack events. Implementations decide
// whether an event warrants an agent invocation and issue at most one reply.
type SlackEventUseCases interface {
	HandleSlackAppMention(ctx context.Context, msg slack.Message) error
	HandleSlackMessage(ctx context.Context, msg slack.Message) error
	HandleSlackSlashCommand(ctx context.Context, channelID, userID, text string) (string, error)
}

// AgentQueryUseCases handles the lighter platform surfaces that respond
// synchronously with the collected agent output.
type AgentQueryUseCases interface {
	HandleWebhook(ctx context.Context, message, userID, sessionID string) (string, error)
	HandleDiscordCommand(ctx context.Context, message, userID string) (string, error)
}
