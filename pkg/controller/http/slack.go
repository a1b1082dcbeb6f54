package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	slack_ctrl "github.com/m-mizutani/inari/pkg/controller/slack"
	"github.com/m-mizutani/inari/pkg/utils/async"
	"github.com/m-mizutani/inari/pkg/utils/errors"
	"github.com/m-mizutani/inari/pkg/utils/safe"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// slackEventHandler accepts Slack Events API callbacks and slash commands on
// a single endpoint. Event callbacks are acknowledged immediately and handed
// to the background dispatcher; Slack drops the connection after 3 seconds.
func slackEventHandler(ctrl *slack_ctrl.Controller, dedupe *eventDedupe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctrl == nil {
			notEnabled(w, r, "slack")
			return
		}

		if isFormEncoded(r) {
			slackSlashCommandHandler(ctrl)(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to read request body"))
			return
		}

		eventsAPIEvent, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to parse slack event", goerr.V("body", string(body))))
			return
		}

		switch eventsAPIEvent.Type {
		case slackevents.URLVerification:
			// Echo the challenge back so Slack accepts the endpoint URL
			var response slackevents.ChallengeResponse
			if err := json.Unmarshal(body, &response); err != nil {
				handleError(w, r, goerr.Wrap(err, "failed to unmarshal slack challenge", goerr.V("body", string(body))))
				return
			}
			w.Header().Set("Content-Type", "text/plain")
			safe.Write(r.Context(), w, []byte(response.Challenge))
			ctxlog.From(r.Context()).Info("slack URL verification succeeded")

		case slackevents.CallbackEvent:
			if eventID := callbackEventID(&eventsAPIEvent); eventID != "" && !dedupe.Mark(eventID) {
				// Slack redelivers on retry; the first delivery already ran
				ctxlog.From(r.Context()).Debug("skipping duplicate slack event", "event_id", eventID)
				w.WriteHeader(http.StatusOK)
				return
			}

			dispatchSlackEvent(r, ctrl, &eventsAPIEvent)

			// Ack inside the 3-second window regardless of handler outcome
			w.WriteHeader(http.StatusOK)

		default:
			ctxlog.From(r.Context()).Warn("unknown slack event type", "type", eventsAPIEvent.Type)
			w.WriteHeader(http.StatusOK)
		}
	}
}

// dispatchSlackEvent hands the callback event to the background dispatcher.
// Handler errors are logged there and never affect the HTTP response.
func dispatchSlackEvent(r *http.Request, ctrl *slack_ctrl.Controller, apiEvent *slackevents.EventsAPIEvent) {
	switch ev := apiEvent.InnerEvent.Data.(type) {
	case *slackevents.AppMentionEvent:
		async.Dispatch(r.Context(), func(ctx context.Context) error {
			return ctrl.HandleSlackAppMention(ctx, apiEvent, ev)
		})

	case *slackevents.MessageEvent:
		async.Dispatch(r.Context(), func(ctx context.Context) error {
			return ctrl.HandleSlackMessage(ctx, apiEvent, ev)
		})

	default:
		ctxlog.From(r.Context()).Warn("unknown slack inner event", "event", ev)
	}
}

// slackSlashCommandHandler handles form-encoded slash command payloads. Slash
// commands expect their response in the request body, so the agent is invoked
// synchronously.
func slackSlashCommandHandler(ctrl *slack_ctrl.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to parse slash command"))
			return
		}

		reply, err := ctrl.HandleSlackSlashCommand(r.Context(), cmd.ChannelID, cmd.UserID, cmd.Text)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to handle slash command",
				goerr.V("command", cmd.Command)))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"response_type": "in_channel",
			"text":          reply,
		}); err != nil {
			errors.Handle(r.Context(), goerr.Wrap(err, "failed to write slash command response"))
		}
	}
}

// callbackEventID extracts the Events API delivery ID used for retry dedupe
func callbackEventID(apiEvent *slackevents.EventsAPIEvent) string {
	if cb, ok := apiEvent.Data.(*slackevents.EventsAPICallbackEvent); ok && cb != nil {
		return cb.EventID
	}
	return ""
}

func isFormEncoded(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}
