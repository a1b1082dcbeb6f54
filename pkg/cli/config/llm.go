package config

import (
	"context"
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/inari/pkg/domain/model/llm"
	llmSvc "github.com/m-mizutani/inari/pkg/service/llm"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed templates/providers.yaml
var defaultProvidersConfig string

// LLM holds LLM provider configuration
type LLM struct {
	ProvidersFile string

	Provider string
	Model    string

	GeminiProjectID string
	GeminiLocation  string
	ClaudeAPIKey    string `masq:"secret"`
	OpenAIAPIKey    string `masq:"secret"`
}

func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-providers-file",
			Category:    "llm",
			Usage:       "Path to LLM providers YAML (uses embedded default when empty)",
			Sources:     cli.EnvVars("INARI_LLM_PROVIDERS_FILE"),
			Destination: &x.ProvidersFile,
		},
		&cli.StringFlag{
			Name:        "llm-provider",
			Category:    "llm",
			Usage:       "Override default LLM provider [gemini|claude|openai]",
			Sources:     cli.EnvVars("INARI_LLM_PROVIDER"),
			Destination: &x.Provider,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Category:    "llm",
			Usage:       "Override default LLM model",
			Sources:     cli.EnvVars("INARI_LLM_MODEL"),
			Destination: &x.Model,
		},
		&cli.StringFlag{
			Name:        "gemini-project-id",
			Category:    "llm",
			Usage:       "Google Cloud project ID for Gemini",
			Sources:     cli.EnvVars("INARI_GEMINI_PROJECT_ID"),
			Destination: &x.GeminiProjectID,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Category:    "llm",
			Usage:       "Google Cloud location for Gemini",
			Sources:     cli.EnvVars("INARI_GEMINI_LOCATION"),
			Destination: &x.GeminiLocation,
		},
		&cli.StringFlag{
			Name:        "claude-api-key",
			Category:    "llm",
			Usage:       "Anthropic API key for Claude",
			Sources:     cli.EnvVars("INARI_CLAUDE_API_KEY"),
			Destination: &x.ClaudeAPIKey,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Category:    "llm",
			Usage:       "OpenAI API key",
			Sources:     cli.EnvVars("INARI_OPENAI_API_KEY"),
			Destination: &x.OpenAIAPIKey,
		},
	}
}

// Load reads the providers config and applies command line overrides
func (x *LLM) Load() (*llm.ProvidersConfig, error) {
	var config llm.ProvidersConfig

	if x.ProvidersFile != "" {
		data, err := os.ReadFile(x.ProvidersFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read providers config file", goerr.V("file", x.ProvidersFile))
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, goerr.Wrap(err, "failed to parse providers config", goerr.V("file", x.ProvidersFile))
		}
	} else {
		if err := yaml.Unmarshal([]byte(defaultProvidersConfig), &config); err != nil {
			return nil, goerr.Wrap(err, "failed to parse default providers config")
		}
	}

	if x.Provider != "" {
		config.Defaults.Provider = x.Provider
	}
	if x.Model != "" {
		config.Defaults.Model = x.Model
	}

	return &config, nil
}

// Configure builds the LLM-backed agent from the resolved providers config
func (x *LLM) Configure(ctx context.Context) (*llmSvc.Agent, error) {
	config, err := x.Load()
	if err != nil {
		return nil, err
	}

	provider := llm.ProviderFromString(config.Defaults.Provider)
	if !provider.IsValid() {
		return nil, goerr.New("invalid LLM provider",
			goerr.V("provider", config.Defaults.Provider),
			goerr.V("valid_providers", []string{"gemini", "claude", "openai"}),
		)
	}

	client, err := llmSvc.NewClient(ctx, provider, config.Defaults.Model, x.credential(provider))
	if err != nil {
		return nil, err
	}

	var agentOpts []llmSvc.AgentOption
	if config.SystemPrompt != "" {
		agentOpts = append(agentOpts, llmSvc.WithSystemPrompt(config.SystemPrompt))
	}

	return llmSvc.NewAgent(client, agentOpts...), nil
}

func (x *LLM) credential(provider llm.Provider) llmSvc.Credential {
	switch provider {
	case llm.ProviderGemini:
		return llmSvc.Credential{
			ProjectID: x.GeminiProjectID,
			Location:  x.GeminiLocation,
		}
	case llm.ProviderClaude:
		return llmSvc.Credential{APIKey: x.ClaudeAPIKey}
	case llm.ProviderOpenAI:
		return llmSvc.Credential{APIKey: x.OpenAIAPIKey}
	}
	return llmSvc.Credential{}
}
