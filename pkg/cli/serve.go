package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/inari/pkg/cli/config"
	server "github.com/m-mizutani/inari/pkg/controller/http"
	slack_controller "github.com/m-mizutani/inari/pkg/controller/slack"
	"github.com/m-mizutani/inari/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr       string
		slackCfg   config.Slack
		discordCfg config.Discord
		webhookCfg config.Webhook
		llmCfg     config.LLM
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Sources:     cli.EnvVars("INARI_ADDR"),
			Usage:       "Listen address (default: 127.0.0.1:8080)",
			Value:       "127.0.0.1:8080",
			Destination: &addr,
		},
	}
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, discordCfg.Flags()...)
	flags = append(flags, webhookCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("starting server",
				"addr", addr,
				"slack", slackCfg,
				"slack_enabled", slackCfg.Enabled(),
				"discord_enabled", discordCfg.Enabled(),
				"webhook_enabled", webhookCfg.Enabled(),
			)

			agent, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM agent")
			}

			ucOptions := []usecase.Option{
				usecase.WithAgent(agent),
			}
			serverOptions := []server.Options{
				server.WithWebhook(webhookCfg.Enabled()),
			}

			if slackCfg.Enabled() {
				slackSvc, err := slackCfg.Configure()
				if err != nil {
					return goerr.Wrap(err, "failed to configure slack service")
				}
				ucOptions = append(ucOptions, usecase.WithSlackClient(slackSvc))
				serverOptions = append(serverOptions,
					server.WithSlackVerifier(slackCfg.Verifier()),
				)
			}

			if discordCfg.Enabled() {
				verifier, err := discordCfg.Verifier()
				if err != nil {
					return goerr.Wrap(err, "failed to configure discord verifier")
				}
				serverOptions = append(serverOptions, server.WithDiscordVerifier(verifier))
			}

			uc := usecase.New(ucOptions...)
			serverOptions = append(serverOptions, server.WithQueryUseCases(uc))

			if slackCfg.Enabled() {
				serverOptions = append(serverOptions,
					server.WithSlackController(slack_controller.New(uc)),
				)
			}

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(serverOptions...),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				ctxlog.From(ctx).Info("server started", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				ctxlog.From(ctx).Info("shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		},
	}
}
