package config

import (
	"github.com/m-mizutani/inari/pkg/domain/model/discord"
	"github.com/urfave/cli/v3"
)

type Discord struct {
	PublicKey string `masq:"secret"`
	Disable   bool
}

func (x *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-public-key",
			Category:    "discord",
			Usage:       "Discord application public key (hex) for interaction verification",
			Sources:     cli.EnvVars("INARI_DISCORD_PUBLIC_KEY"),
			Destination: &x.PublicKey,
		},
		&cli.BoolFlag{
			Name:        "disable-discord",
			Category:    "discord",
			Usage:       "Disable the Discord integration endpoints",
			Sources:     cli.EnvVars("INARI_DISABLE_DISCORD"),
			Destination: &x.Disable,
		},
	}
}

// Enabled reports whether the Discord integration should be served. A public
// key is mandatory: without it inbound interactions cannot be verified.
func (x *Discord) Enabled() bool {
	return !x.Disable && x.PublicKey != ""
}

func (x *Discord) Verifier() (*discord.Verifier, error) {
	return discord.NewVerifier(x.PublicKey)
}
