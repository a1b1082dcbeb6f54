package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	agent_model "github.com/m-mizutani/inari/pkg/domain/model/agent"
	"github.com/m-mizutani/inari/pkg/domain/model/slack"
	"github.com/m-mizutani/inari/pkg/utils/errors"
)

// errorReplyText is posted to the originating thread when the agent fails.
// The user must see that the request went wrong, not silence.
const errorReplyText = "Sorry, something went wrong while handling your request. Please try again."

// HandleSlackAppMention handles an app mention event. A mention always
// triggers an agent invocation and opens the thread rooted at its
// conversation key.
func (uc *UseCases) HandleSlackAppMention(ctx context.Context, msg slack.Message) error {
	if uc.slackClient == nil {
		return goerr.New("slack client not configured")
	}
	if uc.agent == nil {
		return goerr.New("agent not configured")
	}

	botUserID := uc.slackClient.BotUserID()
	if msg.FromBot(botUserID) {
		// A bot mentioning the bot must never start a reply loop
		ctxlog.From(ctx).Debug("ignoring bot-originated mention",
			"channel", msg.Channel,
			"user", msg.UserID,
			"bot_id", msg.BotID,
		)
		return nil
	}

	key := msg.ConversationKey()
	text := slack.StripMention(msg.Text, botUserID)
	if text == "" {
		// Bare mention with no message: reply visibly without an agent call
		return uc.slackClient.PostMessage(ctx, msg.Channel, key, agent_model.FallbackText)
	}

	return uc.invokeAndReply(ctx, uc.buildSlackQuery(text, msg.Channel, key), msg.Channel, key)
}

// HandleSlackMessage handles a plain message event: direct messages and
// replies inside threads opened by a prior mention trigger the agent,
// undirected channel chatter does not.
func (uc *UseCases) HandleSlackMessage(ctx context.Context, msg slack.Message) error {
	if uc.slackClient == nil {
		return goerr.New("slack client not configured")
	}
	if uc.agent == nil {
		return goerr.New("agent not configured")
	}

	invoke, err := uc.classifyMessage(ctx, &msg)
	if err != nil {
		return err
	}
	if !invoke {
		ctxlog.From(ctx).Debug("ignoring slack message",
			"channel", msg.Channel,
			"thread", msg.ThreadTS,
			"channel_type", msg.ChannelType,
		)
		return nil
	}

	key := msg.ConversationKey()
	text := slack.StripMention(msg.Text, uc.slackClient.BotUserID())
	if text == "" {
		return nil
	}

	return uc.invokeAndReply(ctx, uc.buildSlackQuery(text, msg.Channel, key), msg.Channel, key)
}

// classifyMessage decides whether a message event warrants an agent
// invocation. Channel messages carrying a bot mention are excluded because
// Slack delivers them again as app_mention events; direct messages are not,
// since IM conversations never produce app_mention.
func (uc *UseCases) classifyMessage(ctx context.Context, msg *slack.Message) (bool, error) {
	botUserID := uc.slackClient.BotUserID()

	switch {
	case msg.FromBot(botUserID):
		return false, nil

	case msg.IsDirectMessage():
		return true, nil

	case msg.MentionsUser(botUserID):
		return false, nil

	case !msg.InThread():
		return false, nil

	default:
		return uc.slackClient.IsThreadOpenedByBot(ctx, msg.Channel, msg.ThreadTS)
	}
}

// HandleSlackSlashCommand invokes the agent for a slash command and returns
// the response text. Slash commands have no thread, so no session continuity
// is established.
func (uc *UseCases) HandleSlackSlashCommand(ctx context.Context, channelID, userID, text string) (string, error) {
	if uc.agent == nil {
		return "", goerr.New("agent not configured")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "Please provide a message.", nil
	}

	query := &agent_model.Query{
		Message: text,
		UserID:  userID,
		Context: agent_model.Context{
			Platform: agent_model.PlatformSlack,
			Channel:  channelID,
		},
	}

	reply, err := uc.queryAgent(ctx, query)
	if err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "slash command agent invocation failed",
			goerr.V("channel", channelID)))
		return errorReplyText, nil
	}
	if reply == "" {
		reply = agent_model.FallbackText
	}

	return reply, nil
}

// buildSlackQuery constructs the normalized agent invocation for a thread
// conversation. Both user and session identity are the conversation key, so
// everyone in the thread shares one conversational context; the real Slack
// user travels only in the platform context consumers.
func (uc *UseCases) buildSlackQuery(text, channel, conversationKey string) *agent_model.Query {
	return &agent_model.Query{
		Message:   text,
		UserID:    conversationKey,
		SessionID: conversationKey,
		Context: agent_model.Context{
			Platform: agent_model.PlatformSlack,
			Channel:  channel,
			ThreadTS: conversationKey,
		},
	}
}

// invokeAgent runs the streaming query and collects the chunks into a single
// reply string.
func (uc *UseCases) queryAgent(ctx context.Context, query *agent_model.Query) (string, error) {
	stream, err := uc.agent.StreamQuery(ctx, query)
	if err != nil {
		return "", err
	}
	return agent_model.CollectText(stream)
}

// invokeAndReply invokes the agent and posts exactly one threaded reply.
// Agent failures are contained here: the thread gets an error notice and the
// failure never propagates, since the HTTP acknowledgement is long gone.
func (uc *UseCases) invokeAndReply(ctx context.Context, query *agent_model.Query, channel, threadKey string) error {
	reply, err := uc.queryAgent(ctx, query)
	if err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "agent invocation failed",
			goerr.V("channel", channel),
			goerr.V("thread", threadKey),
		))
		if postErr := uc.slackClient.PostMessage(ctx, channel, threadKey, errorReplyText); postErr != nil {
			errors.Handle(ctx, goerr.Wrap(postErr, "failed to post error notice",
				goerr.V("channel", channel),
				goerr.V("thread", threadKey),
			))
		}
		return nil
	}

	if reply == "" {
		reply = agent_model.FallbackText
	}

	if err := uc.slackClient.PostMessage(ctx, channel, threadKey, reply); err != nil {
		// No retry here: the failure is surfaced to the operator via logs
		return goerr.Wrap(err, "failed to post agent reply",
			goerr.V("channel", channel),
			goerr.V("thread", threadKey),
		)
	}

	ctxlog.From(ctx).Info("replied to slack conversation",
		"channel", channel,
		"thread", threadKey,
		"session_id", query.SessionID,
	)

	return nil
}
