package agent

// Platform name constants set in Context.Platform.
const (
	PlatformSlack   = "slack"
	PlatformDiscord = "discord"
	PlatformWebhook = "webhook"
)

// Context carries platform-specific information alongside a query. The agent
// may use it for routing or prompt construction, but it is not part of the
// session identity.
type Context struct {
	Platform string `json:"platform"`
	Channel  string `json:"channel,omitempty"`
	ThreadTS string `json:"thread_ts,omitempty"`
}

// Query is the normalized request passed to an Agent. It is constructed fresh
// per inbound event and not retained after the invocation finishes.
type Query struct {
	Message   string  `json:"message"`
	UserID    string  `json:"user_id,omitempty"`
	SessionID string  `json:"session_id,omitempty"`
	Context   Context `json:"context"`
}

// Validate checks the query has a message to process
func (q *Query) Validate() error {
	if q.Message == "" {
		return ErrEmptyMessage
	}
	return nil
}
