package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	slack_controller "github.com/m-mizutani/inari/pkg/controller/slack"
	"github.com/m-mizutani/inari/pkg/domain/interfaces"
	"github.com/m-mizutani/inari/pkg/domain/model/discord"
	"github.com/m-mizutani/inari/pkg/domain/model/slack"
	"github.com/m-mizutani/inari/pkg/utils/safe"
)

// Server represents the HTTP server
type Server struct {
	router          *chi.Mux
	slackCtrl       *slack_controller.Controller
	queryUC         interfaces.AgentQueryUseCases
	slackVerifier   slack.PayloadVerifier
	discordVerifier *discord.Verifier
	webhookEnabled  bool
	dedupe          *eventDedupe
}

// Options is a functional option for Server
type Options func(*Server)

// WithSlackController sets the Slack controller. The Slack endpoints return
// 404 until one is configured.
func WithSlackController(ctrl *slack_controller.Controller) Options {
	return func(s *Server) {
		s.slackCtrl = ctrl
	}
}

// WithSlackVerifier sets the Slack payload verifier
func WithSlackVerifier(verifier slack.PayloadVerifier) Options {
	return func(s *Server) {
		s.slackVerifier = verifier
	}
}

// WithDiscordVerifier sets the Discord interaction verifier. The Discord
// endpoints return 404 until one is configured.
func WithDiscordVerifier(verifier *discord.Verifier) Options {
	return func(s *Server) {
		s.discordVerifier = verifier
	}
}

// WithQueryUseCases sets the use cases backing the webhook and Discord
// endpoints
func WithQueryUseCases(uc interfaces.AgentQueryUseCases) Options {
	return func(s *Server) {
		s.queryUC = uc
	}
}

// WithWebhook enables the generic webhook endpoint
func WithWebhook(enable bool) Options {
	return func(s *Server) {
		s.webhookEnabled = enable
	}
}

// New creates a new HTTP server
func New(opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		dedupe: newEventDedupe(dedupeTTL),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Apply middleware
	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	// Register routes
	r.Route("/agent", func(r chi.Router) {
		r.Route("/slack", func(r chi.Router) {
			r.Get("/", integrationStatusHandler("slack", s.slackCtrl != nil))
			r.Group(func(r chi.Router) {
				// Invalid signatures never reach the event handler
				if s.slackVerifier != nil {
					r.Use(verifySlackSignature(s.slackVerifier))
				}
				r.Post("/events", slackEventHandler(s.slackCtrl, s.dedupe))
			})
		})

		r.Route("/discord", func(r chi.Router) {
			r.Get("/", integrationStatusHandler("discord", s.discordVerifier != nil))
			r.Group(func(r chi.Router) {
				if s.discordVerifier != nil {
					r.Use(verifyDiscordSignature(s.discordVerifier))
				}
				r.Post("/interactions", discordInteractionHandler(s.discordVerifier, s.queryUC))
			})
		})

		r.Route("/webhook", func(r chi.Router) {
			r.Get("/", integrationStatusHandler("webhook", s.webhookEnabled))
			r.Post("/", webhookHandler(s.webhookEnabled, s.queryUC))
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
