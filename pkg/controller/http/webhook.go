package http

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/inari/pkg/domain/interfaces"
	"github.com/m-mizutani/inari/pkg/domain/model/agent"
	"github.com/m-mizutani/inari/pkg/utils/errors"
)

type webhookRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

type webhookResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}

// webhookHandler serves the generic synchronous query endpoint
func webhookHandler(enabled bool, uc interfaces.AgentQueryUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			notEnabled(w, r, "webhook")
			return
		}

		var req webhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to decode webhook request",
				goerr.V("status", http.StatusBadRequest)))
			return
		}

		if req.Message == "" {
			http.Error(w, "message is required", http.StatusBadRequest)
			return
		}

		reply, err := uc.HandleWebhook(r.Context(), req.Message, req.UserID, req.SessionID)
		if err != nil {
			if stderrors.Is(err, agent.ErrEmptyMessage) {
				http.Error(w, "message is required", http.StatusBadRequest)
				return
			}
			handleError(w, r, goerr.Wrap(err, "webhook query failed"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(webhookResponse{
			Response:  reply,
			SessionID: req.SessionID,
		}); err != nil {
			errors.Handle(r.Context(), goerr.Wrap(err, "failed to write webhook response"))
		}
	}
}
