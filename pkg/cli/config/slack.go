package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/inari/pkg/domain/model/slack"
	slackSvc "github.com/m-mizutani/inari/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	OAuthToken    string `masq:"secret"`
	SigningSecret string `masq:"secret"`
	Disable       bool
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Category:    "slack",
			Usage:       "Slack OAuth token",
			Sources:     cli.EnvVars("INARI_SLACK_OAUTH_TOKEN"),
			Destination: &x.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Category:    "slack",
			Usage:       "Slack signing secret for request verification",
			Sources:     cli.EnvVars("INARI_SLACK_SIGNING_SECRET"),
			Destination: &x.SigningSecret,
		},
		&cli.BoolFlag{
			Name:        "disable-slack",
			Category:    "slack",
			Usage:       "Disable the Slack integration endpoints",
			Sources:     cli.EnvVars("INARI_DISABLE_SLACK"),
			Destination: &x.Disable,
		},
	}
}

// Enabled reports whether the Slack integration should be served
func (x *Slack) Enabled() bool {
	return !x.Disable
}

func (x *Slack) Configure() (*slackSvc.Service, error) {
	if x.OAuthToken == "" {
		return nil, goerr.New("slack oauth token is required")
	}
	if x.SigningSecret == "" {
		return nil, goerr.New("slack signing secret is required")
	}

	return slackSvc.New(x.OAuthToken)
}

func (x *Slack) Verifier() slack.PayloadVerifier {
	return slack.NewVerifier(x.SigningSecret)
}
