package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	agent_model "github.com/m-mizutani/inari/pkg/domain/model/agent"
)

// HandleWebhook invokes the agent for a generic webhook request. The caller
// controls its own session identity; an empty sessionID yields a one-shot
// invocation.
func (uc *UseCases) HandleWebhook(ctx context.Context, message, userID, sessionID string) (string, error) {
	if uc.agent == nil {
		return "", goerr.New("agent not configured")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", goerr.Wrap(agent_model.ErrEmptyMessage, "webhook message is required")
	}

	query := &agent_model.Query{
		Message:   message,
		UserID:    userID,
		SessionID: sessionID,
		Context: agent_model.Context{
			Platform: agent_model.PlatformWebhook,
		},
	}

	return uc.queryAgent(ctx, query)
}

// HandleDiscordCommand invokes the agent for a Discord application command.
// Discord interactions carry no thread context, so each command is a
// standalone invocation keyed by the calling user.
func (uc *UseCases) HandleDiscordCommand(ctx context.Context, message, userID string) (string, error) {
	if uc.agent == nil {
		return "", goerr.New("agent not configured")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", goerr.Wrap(agent_model.ErrEmptyMessage, "discord command message is required")
	}

	query := &agent_model.Query{
		Message: message,
		UserID:  userID,
		Context: agent_model.Context{
			Platform: agent_model.PlatformDiscord,
		},
	}

	reply, err := uc.queryAgent(ctx, query)
	if err != nil {
		return "", err
	}
	if reply == "" {
		reply = agent_model.FallbackText
	}

	return reply, nil
}
