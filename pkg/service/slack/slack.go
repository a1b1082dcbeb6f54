package slack

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/inari/pkg/domain/interfaces"
	slack_model "github.com/m-mizutani/inari/pkg/domain/model/slack"
	api "github.com/slack-go/slack"
)

// Service implements Slack operations on top of the Web API
type Service struct {
	client    *api.Client
	botUserID string
	threads   *threadCache
}

// New creates a new Slack service. The OAuth token is validated via auth.test
// at startup so a bad credential fails loudly instead of at the first reply.
func New(token string) (*Service, error) {
	client := api.New(token)

	resp, err := client.AuthTest()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate slack client")
	}

	svc := &Service{
		client:    client,
		botUserID: resp.UserID,
	}
	svc.threads = newThreadCache(svc.lookupThreadRoot, time.Hour)

	return svc, nil
}

// Ensure Service implements SlackClient interface
var _ interfaces.SlackClient = (*Service)(nil)

// PostMessage posts a message to a Slack channel, threaded when threadTS is set
func (s *Service) PostMessage(ctx context.Context, channelID, threadTS, text string) error {
	options := []api.MsgOption{
		api.MsgOptionText(text, false),
	}
	if threadTS != "" {
		options = append(options, api.MsgOptionTS(threadTS))
	}

	channelID, timestamp, err := s.client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return goerr.Wrap(err, "failed to post message to slack",
			goerr.V("channel", channelID), goerr.V("thread", threadTS))
	}

	ctxlog.From(ctx).Debug("posted message to slack",
		"channel", channelID,
		"timestamp", timestamp,
		"thread", threadTS,
	)

	return nil
}

// IsBotUser checks if the given user ID is the bot user
func (s *Service) IsBotUser(userID string) bool {
	return s.botUserID == userID
}

// BotUserID returns the bot's own user ID
func (s *Service) BotUserID() string {
	return s.botUserID
}

// IsThreadOpenedByBot reports whether the thread rooted at threadTS was
// opened by a message mentioning the bot. The root message never changes, so
// results are served from a TTL cache after the first lookup.
func (s *Service) IsThreadOpenedByBot(ctx context.Context, channelID, threadTS string) (bool, error) {
	return s.threads.isOpened(ctx, channelID, threadTS)
}

// lookupThreadRoot fetches the thread's root message and checks it for a
// mention of the bot.
func (s *Service) lookupThreadRoot(ctx context.Context, channelID, threadTS string) (bool, error) {
	msgs, _, _, err := s.client.GetConversationRepliesContext(ctx, &api.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Limit:     1,
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to fetch thread root",
			goerr.V("channel", channelID), goerr.V("thread", threadTS))
	}
	if len(msgs) == 0 {
		return false, nil
	}

	root := msgs[0]
	for _, mention := range slack_model.ParseMention(root.Text) {
		if mention.UserID == s.botUserID {
			return true, nil
		}
	}

	return false, nil
}
