package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/inari/pkg/domain/interfaces"
	"github.com/m-mizutani/inari/pkg/domain/model/discord"
	"github.com/m-mizutani/inari/pkg/utils/errors"
)

// discordInteractionHandler handles Discord interaction webhooks. Discord
// expects the response in the request body within its own deadline, so
// commands are served synchronously.
func discordInteractionHandler(verifier *discord.Verifier, uc interfaces.AgentQueryUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if verifier == nil {
			notEnabled(w, r, "discord")
			return
		}

		var interaction discord.Interaction
		if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to decode discord interaction"))
			return
		}

		switch interaction.Type {
		case discord.InteractionPing:
			writeDiscordResponse(w, r, discord.Pong())

		case discord.InteractionApplicationCommand:
			message := interaction.CommandMessage()
			userID := interaction.UserID()

			reply, err := uc.HandleDiscordCommand(r.Context(), message, userID)
			if err != nil {
				errors.Handle(r.Context(), goerr.Wrap(err, "discord command failed",
					goerr.V("user", userID)))
				writeDiscordResponse(w, r, discord.MessageResponse(errorReplyText))
				return
			}

			writeDiscordResponse(w, r, discord.MessageResponse(reply))

		default:
			ctxlog.From(r.Context()).Warn("unknown discord interaction type", "type", interaction.Type)
			http.Error(w, "Bad Request", http.StatusBadRequest)
		}
	}
}

func writeDiscordResponse(w http.ResponseWriter, r *http.Request, resp *discord.InteractionResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		errors.Handle(r.Context(), goerr.Wrap(err, "failed to write discord response"))
	}
}
