package config

import (
	"github.com/urfave/cli/v3"
)

type Webhook struct {
	Disable bool
}

func (x *Webhook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "disable-webhook",
			Category:    "webhook",
			Usage:       "Disable the generic webhook endpoint",
			Sources:     cli.EnvVars("INARI_DISABLE_WEBHOOK"),
			Destination: &x.Disable,
		},
	}
}

// Enabled reports whether the webhook endpoint should be served
func (x *Webhook) Enabled() bool {
	return !x.Disable
}
