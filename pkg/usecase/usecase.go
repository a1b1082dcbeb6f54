package usecase

import (
	"github.com/m-mizutani/inari/pkg/domain/interfaces"
)

// UseCases orchestrates inbound platform events: it decides whether an event
// warrants an agent invocation, derives the conversation key, invokes the
// agent, normalizes the streamed output and issues at most one reply.
type UseCases struct {
	slackClient interfaces.SlackClient
	agent       interfaces.Agent
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithSlackClient sets the Slack client
func WithSlackClient(client interfaces.SlackClient) Option {
	return func(uc *UseCases) {
		uc.slackClient = client
	}
}

// WithAgent sets the agent capability implementation
func WithAgent(agent interfaces.Agent) Option {
	return func(uc *UseCases) {
		uc.agent = agent
	}
}

// New creates a new UseCases instance
func New(opts ...Option) *UseCases {
	uc := &UseCases{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Ensure UseCases implements the controller-facing interfaces
var (
	_ interfaces.SlackEventUseCases = (*UseCases)(nil)
	_ interfaces.AgentQueryUseCases = (*UseCases)(nil)
)
