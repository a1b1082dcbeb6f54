package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/inari/pkg/domain/interfaces"
	slack_model "github.com/m-mizutani/inari/pkg/domain/model/slack"
	"github.com/slack-go/slack/slackevents"
)

// Controller adapts Slack Events API payloads to the orchestrator use cases
type Controller struct {
	event interfaces.SlackEventUseCases
}

// New creates a new Slack controller
func New(event interfaces.SlackEventUseCases) *Controller {
	return &Controller{
		event: event,
	}
}

// HandleSlackAppMention handles Slack app mention events
func (x *Controller) HandleSlackAppMention(ctx context.Context, apiEvent *slackevents.EventsAPIEvent, event *slackevents.AppMentionEvent) error {
	ctxlog.From(ctx).Debug("handling slack app mention",
		"event_ts", event.EventTimeStamp,
		"channel", event.Channel,
	)

	slackMsg := slack_model.NewMessage(ctx, apiEvent)
	if slackMsg == nil {
		return nil
	}

	return x.event.HandleSlackAppMention(ctx, *slackMsg)
}

// HandleSlackMessage handles Slack message events
func (x *Controller) HandleSlackMessage(ctx context.Context, apiEvent *slackevents.EventsAPIEvent, event *slackevents.MessageEvent) error {
	ctxlog.From(ctx).Debug("handling slack message",
		"event_ts", event.EventTimeStamp,
		"channel", event.Channel,
		"channel_type", event.ChannelType,
	)

	slackMsg := slack_model.NewMessage(ctx, apiEvent)
	if slackMsg == nil {
		return nil
	}

	return x.event.HandleSlackMessage(ctx, *slackMsg)
}

// HandleSlackSlashCommand handles a parsed slash command and returns the
// response text to render back to the invoking user.
func (x *Controller) HandleSlackSlashCommand(ctx context.Context, channelID, userID, text string) (string, error) {
	ctxlog.From(ctx).Debug("handling slack slash command",
		"channel", channelID,
		"user", userID,
	)

	return x.event.HandleSlackSlashCommand(ctx, channelID, userID, text)
}
