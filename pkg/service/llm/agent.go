package llm

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/inari/pkg/domain/interfaces"
	agent_model "github.com/m-mizutani/inari/pkg/domain/model/agent"
)

// defaultSessionTTL bounds how long an idle conversation keeps its history.
const defaultSessionTTL = 24 * time.Hour

// Agent is the built-in LLM-backed agent implementation. Conversation context
// is thread-scoped: one gollem session per session ID, carrying the exchange
// history. Sessions idle past the TTL are dropped, so the map stays bounded
// over the process lifetime; retention beyond that is out of scope here.
type Agent struct {
	client       gollem.LLMClient
	systemPrompt string
	sessionTTL   time.Duration

	mu       sync.Mutex
	sessions map[string]*agentSession
}

type agentSession struct {
	ssn      gollem.Session
	lastUsed time.Time
}

// AgentOption is a functional option for Agent
type AgentOption func(*Agent)

// WithSystemPrompt sets the system prompt used for every session
func WithSystemPrompt(prompt string) AgentOption {
	return func(a *Agent) {
		a.systemPrompt = prompt
	}
}

// WithSessionTTL sets how long an idle session keeps its conversation history
func WithSessionTTL(ttl time.Duration) AgentOption {
	return func(a *Agent) {
		a.sessionTTL = ttl
	}
}

// NewAgent creates an agent backed by the given LLM client
func NewAgent(client gollem.LLMClient, opts ...AgentOption) *Agent {
	a := &Agent{
		client:     client,
		sessionTTL: defaultSessionTTL,
		sessions:   make(map[string]*agentSession),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.sessionTTL <= 0 {
		a.sessionTTL = defaultSessionTTL
	}
	return a
}

// Ensure Agent implements the capability interface
var _ interfaces.Agent = (*Agent)(nil)

// StreamQuery implements the agent capability contract. The model call runs
// inline; callers detach it from any acknowledgement path themselves.
func (a *Agent) StreamQuery(ctx context.Context, query *agent_model.Query) (agent_model.Stream, error) {
	if err := query.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid agent query")
	}

	ssn, err := a.session(ctx, query.SessionID)
	if err != nil {
		return nil, err
	}

	resp, err := ssn.GenerateContent(ctx, gollem.Text(query.Message))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content",
			goerr.V("session_id", query.SessionID),
			goerr.V("platform", query.Context.Platform),
		)
	}

	ctxlog.From(ctx).Debug("agent generated content",
		"session_id", query.SessionID,
		"texts", len(resp.Texts),
	)

	chunks := make([]agent_model.Chunk, 0, len(resp.Texts))
	for _, text := range resp.Texts {
		chunks = append(chunks, agent_model.TextChunk(text))
	}

	return agent_model.NewStream(chunks...), nil
}

// session returns the gollem session for the given session ID, creating one
// on first use. An empty session ID gets a fresh one-shot session.
func (a *Agent) session(ctx context.Context, sessionID string) (gollem.Session, error) {
	if sessionID == "" {
		ssn, err := a.newSession(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create one-shot session")
		}
		return ssn, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if entry, ok := a.sessions[sessionID]; ok && time.Since(entry.lastUsed) <= a.sessionTTL {
		entry.lastUsed = time.Now()
		return entry.ssn, nil
	}

	ssn, err := a.newSession(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session", goerr.V("session_id", sessionID))
	}

	// Drop idle sessions opportunistically to bound the map size
	for id, entry := range a.sessions {
		if time.Since(entry.lastUsed) > a.sessionTTL {
			delete(a.sessions, id)
		}
	}
	a.sessions[sessionID] = &agentSession{ssn: ssn, lastUsed: time.Now()}

	return ssn, nil
}

func (a *Agent) newSession(ctx context.Context) (gollem.Session, error) {
	var opts []gollem.SessionOption
	if a.systemPrompt != "" {
		opts = append(opts, gollem.WithSessionSystemPrompt(a.systemPrompt))
	}
	return a.client.NewSession(ctx, opts...)
}
