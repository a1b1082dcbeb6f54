package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/inari/pkg/utils/errors"
	"github.com/m-mizutani/inari/pkg/utils/safe"
)

// errorReplyText is returned to chat surfaces that demand an inline response
// body when the agent fails.
const errorReplyText = "Sorry, something went wrong while handling your request. Please try again."

// handleError logs the error and writes the HTTP response. A goerr value
// carrying a "status" variable overrides the default 500.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	errors.Handle(r.Context(), goerr.Wrap(err, "request error",
		goerr.V("path", r.URL.Path),
		goerr.V("method", r.Method),
	))

	statusCode := http.StatusInternalServerError
	if goErr := goerr.Unwrap(err); goErr != nil {
		if v, ok := goErr.Values()["status"].(int); ok {
			statusCode = v
		}
	}

	http.Error(w, http.StatusText(statusCode), statusCode)
}

// notEnabled answers requests for integrations that are not configured
func notEnabled(w http.ResponseWriter, r *http.Request, integration string) {
	w.WriteHeader(http.StatusNotFound)
	safe.Write(r.Context(), w, []byte(integration+" integration is not enabled"))
}

// integrationStatusHandler reports whether an integration endpoint is live
func integrationStatusHandler(integration string, enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			notEnabled(w, r, integration)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status":      "ok",
			"integration": integration,
		}); err != nil {
			errors.Handle(r.Context(), goerr.Wrap(err, "failed to write status response"))
		}
	}
}
