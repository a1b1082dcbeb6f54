package http_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	server "github.com/m-mizutani/inari/pkg/controller/http"
	slack_ctrl "github.com/m-mizutani/inari/pkg/controller/slack"
	"github.com/m-mizutani/inari/pkg/domain/mock"
	"github.com/m-mizutani/inari/pkg/domain/model/agent"
	"github.com/m-mizutani/inari/pkg/domain/model/slack"
	"github.com/m-mizutani/inari/pkg/usecase"
	"github.com/m-mizutani/inari/pkg/utils/async"
)

const botUserID = "U12345BOT"

func newSlackClientMock() *mock.SlackClientMock {
	return &mock.SlackClientMock{
		BotUserIDFunc: func() string { return botUserID },
		IsBotUserFunc: func(uid string) bool { return uid == botUserID },
		PostMessageFunc: func(ctx context.Context, channelID, threadTS, text string) error {
			return nil
		},
		IsThreadOpenedByBotFunc: func(ctx context.Context, channelID, threadTS string) (bool, error) {
			return false, nil
		},
	}
}

func newAgentMock(reply string) *mock.AgentMock {
	return &mock.AgentMock{
		StreamQueryFunc: func(ctx context.Context, query *agent.Query) (agent.Stream, error) {
			return agent.NewStream(agent.TextChunk(reply)), nil
		},
	}
}

func newSlackServer(slackMock *mock.SlackClientMock, agentMock *mock.AgentMock, opts ...server.Options) *server.Server {
	uc := usecase.New(
		usecase.WithSlackClient(slackMock),
		usecase.WithAgent(agentMock),
	)
	opts = append(opts, server.WithSlackController(slack_ctrl.New(uc)))
	return server.New(opts...)
}

func appMentionEvent(eventID, channelID, ts, text string) []byte {
	event := map[string]any{
		"token":   "test-token",
		"team_id": "T12345",
		"type":    "event_callback",
		"event": map[string]any{
			"type":     "app_mention",
			"user":     "U67890USER",
			"text":     text,
			"ts":       ts,
			"channel":  channelID,
			"event_ts": ts,
		},
		"event_id":   eventID,
		"event_time": 1234567890,
	}
	body, _ := json.Marshal(event)
	return body
}

func postEvent(srv *server.Server, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/agent/slack/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(async.WithSyncMode(req.Context()))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestSlackEventHandler(t *testing.T) {
	t.Run("handles URL verification challenge", func(t *testing.T) {
		slackMock := newSlackClientMock()
		agentMock := newAgentMock("unused")
		srv := newSlackServer(slackMock, agentMock)

		challenge := "test-challenge-string"
		body, err := json.Marshal(map[string]any{
			"type":      "url_verification",
			"challenge": challenge,
		})
		gt.NoError(t, err)

		rec := postEvent(srv, body)

		gt.Equal(t, rec.Code, http.StatusOK)
		gt.Equal(t, rec.Body.String(), challenge)
		gt.A(t, agentMock.StreamQueryCalls()).Length(0)
		gt.A(t, slackMock.PostMessageCalls()).Length(0)
	})

	t.Run("handles app mention event and posts to thread", func(t *testing.T) {
		channelID := "C11111"
		ts := "1234567890.123456"

		slackMock := newSlackClientMock()
		agentMock := newAgentMock("Hello!")
		srv := newSlackServer(slackMock, agentMock)

		body := appMentionEvent("Ev0001", channelID, ts, fmt.Sprintf("<@%s> help", botUserID))
		rec := postEvent(srv, body)

		gt.Equal(t, rec.Code, http.StatusOK)

		calls := slackMock.PostMessageCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].ChannelID, channelID)
		gt.Equal(t, calls[0].ThreadTS, ts)
		gt.Equal(t, calls[0].Text, "Hello!")
	})

	t.Run("skips redelivered events with the same event_id", func(t *testing.T) {
		slackMock := newSlackClientMock()
		agentMock := newAgentMock("once")
		srv := newSlackServer(slackMock, agentMock)

		body := appMentionEvent("EvDUP01", "C11111", "1234567890.123456", fmt.Sprintf("<@%s> retry me", botUserID))

		gt.Equal(t, postEvent(srv, body).Code, http.StatusOK)
		gt.Equal(t, postEvent(srv, body).Code, http.StatusOK)

		gt.A(t, agentMock.StreamQueryCalls()).Length(1)
		gt.A(t, slackMock.PostMessageCalls()).Length(1)
	})

	t.Run("returns 404 when slack integration is not enabled", func(t *testing.T) {
		srv := server.New()

		body, err := json.Marshal(map[string]any{
			"type":      "url_verification",
			"challenge": "ignored",
		})
		gt.NoError(t, err)

		rec := postEvent(srv, body)
		gt.Equal(t, rec.Code, http.StatusNotFound)
		gt.S(t, rec.Body.String()).Contains("not enabled")
	})

	t.Run("always returns 200 when the agent fails", func(t *testing.T) {
		slackMock := newSlackClientMock()
		agentMock := &mock.AgentMock{
			StreamQueryFunc: func(ctx context.Context, query *agent.Query) (agent.Stream, error) {
				return nil, fmt.Errorf("model unavailable")
			},
		}
		srv := newSlackServer(slackMock, agentMock)

		body := appMentionEvent("EvERR01", "C11111", "1234567890.123456", fmt.Sprintf("<@%s> break", botUserID))
		rec := postEvent(srv, body)

		gt.Equal(t, rec.Code, http.StatusOK)

		// The thread still gets exactly one error notice
		calls := slackMock.PostMessageCalls()
		gt.A(t, calls).Length(1)
		gt.S(t, calls[0].Text).Contains("Sorry")
	})

	t.Run("handles form-encoded slash commands synchronously", func(t *testing.T) {
		slackMock := newSlackClientMock()
		agentMock := newAgentMock("slash reply")
		srv := newSlackServer(slackMock, agentMock)

		form := url.Values{
			"command":    {"/inari"},
			"text":       {"what is up"},
			"channel_id": {"C11111"},
			"user_id":    {"U67890USER"},
		}
		req := httptest.NewRequest("POST", "/agent/slack/events", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Equal(t, rec.Code, http.StatusOK)
		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Equal(t, resp["text"], "slash reply")

		queries := agentMock.StreamQueryCalls()
		gt.A(t, queries).Length(1)
		gt.Equal(t, queries[0].Query.Message, "what is up")
	})

	t.Run("verifies Slack signature when configured", func(t *testing.T) {
		signingSecret := "test-signing-secret"

		slackMock := newSlackClientMock()
		agentMock := newAgentMock("verified")
		srv := newSlackServer(slackMock, agentMock,
			server.WithSlackVerifier(slack.NewVerifier(signingSecret)),
		)

		body := appMentionEvent("EvSIG01", "C11111", "1234567890.123456", fmt.Sprintf("<@%s> test", botUserID))

		t.Run("accepts valid signature", func(t *testing.T) {
			timestamp := strconv.FormatInt(time.Now().Unix(), 10)
			baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))
			h := hmac.New(sha256.New, []byte(signingSecret))
			h.Write([]byte(baseString))
			signature := "v0=" + hex.EncodeToString(h.Sum(nil))

			req := httptest.NewRequest("POST", "/agent/slack/events", bytes.NewReader(body))
			req = req.WithContext(async.WithSyncMode(req.Context()))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Slack-Request-Timestamp", timestamp)
			req.Header.Set("X-Slack-Signature", signature)
			rec := httptest.NewRecorder()

			srv.ServeHTTP(rec, req)

			gt.Equal(t, rec.Code, http.StatusOK)
			gt.A(t, slackMock.PostMessageCalls()).Length(1)
		})

		t.Run("rejects invalid signature", func(t *testing.T) {
			req := httptest.NewRequest("POST", "/agent/slack/events", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(time.Now().Unix(), 10))
			req.Header.Set("X-Slack-Signature", "v0=invalid")
			rec := httptest.NewRecorder()

			srv.ServeHTTP(rec, req)

			gt.Equal(t, rec.Code, http.StatusUnauthorized)
			gt.A(t, agentMock.StreamQueryCalls()).Length(1) // only the accepted request
		})
	})
}

func TestHealthCheck(t *testing.T) {
	srv := server.New()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Equal(t, rec.Code, http.StatusOK)
	gt.Equal(t, rec.Body.String(), "OK")
}
