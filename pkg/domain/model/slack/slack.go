package slack

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/inari/pkg/domain/types"
	"github.com/slack-go/slack/slackevents"
)

// ChannelType values reported by the Slack Events API
const (
	ChannelTypeIM      = "im"
	ChannelTypeChannel = "channel"
	ChannelTypeGroup   = "group"
	ChannelTypeMPIM    = "mpim"
)

// Mention represents a user mention embedded in message text
type Mention struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Message is the normalized inbound Slack event. It is immutable once built
// and discarded after the orchestrator finishes handling it.
type Message struct {
	ID          types.MessageID `json:"id"`
	EventID     string          `json:"event_id,omitempty"`
	TeamID      string          `json:"team_id,omitempty"`
	Channel     string          `json:"channel"`
	ChannelType string          `json:"channel_type,omitempty"`
	UserID      string          `json:"user_id"`
	BotID       string          `json:"bot_id,omitempty"`
	Text        string          `json:"text"`
	Timestamp   string          `json:"timestamp"`
	ThreadTS    string          `json:"thread_ts,omitempty"`
	Mentions    []Mention       `json:"mentions,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ConversationKey derives the thread identity of this message: the thread
// timestamp when the message is inside a thread, otherwise the message's own
// timestamp, which becomes the thread root going forward.
func (m *Message) ConversationKey() string {
	if m.ThreadTS != "" {
		return m.ThreadTS
	}
	return m.Timestamp
}

// InThread returns true if the message is a reply inside an existing thread
func (m *Message) InThread() bool {
	return m.ThreadTS != ""
}

// IsDirectMessage returns true for messages in an IM channel
func (m *Message) IsDirectMessage() bool {
	return m.ChannelType == ChannelTypeIM
}

// FromBot reports whether the message originates from a bot: either the
// payload carries a bot_id, or the sender is the given bot user itself.
func (m *Message) FromBot(botUserID string) bool {
	if m.BotID != "" {
		return true
	}
	return botUserID != "" && m.UserID == botUserID
}

// MentionsUser reports whether the message text mentions the given user
func (m *Message) MentionsUser(userID string) bool {
	for _, mention := range m.Mentions {
		if mention.UserID == userID {
			return true
		}
	}
	return false
}

// Validate checks the fields the orchestrator relies on
func (m *Message) Validate() error {
	if m.Channel == "" {
		return ErrEmptyChannelID
	}
	if m.Timestamp == "" {
		return ErrEmptyTimestamp
	}
	return nil
}

// NewMessage builds a Message from a parsed Events API envelope. It returns
// nil for inner event types the orchestrator does not handle.
func NewMessage(ctx context.Context, ev *slackevents.EventsAPIEvent) *Message {
	msgID := types.NewMessageID(ctx)
	eventID := callbackEventID(ev)

	switch inEv := ev.InnerEvent.Data.(type) {
	case *slackevents.AppMentionEvent:
		return &Message{
			ID:        msgID,
			EventID:   eventID,
			TeamID:    ev.TeamID,
			Channel:   inEv.Channel,
			UserID:    inEv.User,
			BotID:     inEv.BotID,
			Text:      inEv.Text,
			Timestamp: inEv.TimeStamp,
			ThreadTS:  inEv.ThreadTimeStamp,
			Mentions:  ParseMention(inEv.Text),
			CreatedAt: time.Now(),
		}

	case *slackevents.MessageEvent:
		return &Message{
			ID:          msgID,
			EventID:     eventID,
			TeamID:      ev.TeamID,
			Channel:     inEv.Channel,
			ChannelType: inEv.ChannelType,
			UserID:      inEv.User,
			BotID:       inEv.BotID,
			Text:        inEv.Text,
			Timestamp:   inEv.TimeStamp,
			ThreadTS:    inEv.ThreadTimeStamp,
			Mentions:    ParseMention(inEv.Text),
			CreatedAt:   time.Now(),
		}

	default:
		// Unknown inner events are ignored, never an error
		ctxlog.From(ctx).Debug("unhandled slack inner event", "event", inEv)
		return nil
	}
}

func callbackEventID(ev *slackevents.EventsAPIEvent) string {
	cb, ok := ev.Data.(*slackevents.EventsAPICallbackEvent)
	if !ok || cb == nil {
		return ""
	}
	return cb.EventID
}
