package llm_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gollem"
	gollem_mock "github.com/m-mizutani/gollem/mock"
	"github.com/m-mizutani/gt"
	agent_model "github.com/m-mizutani/inari/pkg/domain/model/agent"
	"github.com/m-mizutani/inari/pkg/service/llm"
)

func newLLMClientMock() *gollem_mock.LLMClientMock {
	return &gollem_mock.LLMClientMock{
		NewSessionFunc: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &gollem_mock.SessionMock{
				GenerateContentFunc: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{"ok"}}, nil
				},
			}, nil
		},
	}
}

func query(sessionID string) *agent_model.Query {
	return &agent_model.Query{
		Message:   "hello",
		UserID:    sessionID,
		SessionID: sessionID,
		Context: agent_model.Context{
			Platform: agent_model.PlatformWebhook,
		},
	}
}

func TestAgentSessionReuse(t *testing.T) {
	ctx := context.Background()

	t.Run("reuses the session for the same session ID", func(t *testing.T) {
		client := newLLMClientMock()
		a := llm.NewAgent(client)

		for i := 0; i < 3; i++ {
			stream, err := a.StreamQuery(ctx, query("s1"))
			gt.NoError(t, err)
			reply, err := agent_model.CollectText(stream)
			gt.NoError(t, err)
			gt.Equal(t, reply, "ok")
		}

		gt.A(t, client.NewSessionCalls()).Length(1)
	})

	t.Run("distinct session IDs get distinct sessions", func(t *testing.T) {
		client := newLLMClientMock()
		a := llm.NewAgent(client)

		_, err := a.StreamQuery(ctx, query("s1"))
		gt.NoError(t, err)
		_, err = a.StreamQuery(ctx, query("s2"))
		gt.NoError(t, err)

		gt.A(t, client.NewSessionCalls()).Length(2)
	})

	t.Run("idle sessions expire and are recreated", func(t *testing.T) {
		client := newLLMClientMock()
		a := llm.NewAgent(client, llm.WithSessionTTL(30*time.Millisecond))

		_, err := a.StreamQuery(ctx, query("s1"))
		gt.NoError(t, err)
		_, err = a.StreamQuery(ctx, query("s1"))
		gt.NoError(t, err)
		gt.A(t, client.NewSessionCalls()).Length(1)

		time.Sleep(50 * time.Millisecond)

		_, err = a.StreamQuery(ctx, query("s1"))
		gt.NoError(t, err)
		gt.A(t, client.NewSessionCalls()).Length(2)
	})

	t.Run("empty session ID gets a one-shot session", func(t *testing.T) {
		client := newLLMClientMock()
		a := llm.NewAgent(client)

		_, err := a.StreamQuery(ctx, query(""))
		gt.NoError(t, err)
		_, err = a.StreamQuery(ctx, query(""))
		gt.NoError(t, err)

		gt.A(t, client.NewSessionCalls()).Length(2)
	})
}
