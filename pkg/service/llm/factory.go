package llm

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/m-mizutani/inari/pkg/domain/model/llm"
)

// Credential holds authentication information for LLM providers
type Credential struct {
	APIKey    string
	ProjectID string // For Gemini/VertexAI
	Location  string // For Gemini/VertexAI
}

// NewClient creates a gollem LLM client for the given provider and model.
// Credentials are validated here so a misconfigured provider fails at
// startup, not at the first conversation.
func NewClient(ctx context.Context, provider llm.Provider, model string, cred Credential) (gollem.LLMClient, error) {
	if !provider.IsValid() {
		return nil, goerr.New("unsupported LLM provider", goerr.V("provider", provider))
	}
	if model == "" {
		return nil, goerr.New("LLM model is not configured", goerr.V("provider", provider))
	}

	switch provider {
	case llm.ProviderGemini:
		if cred.ProjectID == "" {
			return nil, goerr.New("Gemini provider requires project ID")
		}
		location := cred.Location
		if location == "" {
			location = "us-central1"
		}
		client, err := gemini.New(ctx, cred.ProjectID, location, gemini.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}
		return client, nil

	case llm.ProviderClaude:
		if cred.APIKey == "" {
			return nil, goerr.New("Claude provider requires API key")
		}
		client, err := claude.New(ctx, cred.APIKey, claude.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Claude client")
		}
		return client, nil

	case llm.ProviderOpenAI:
		if cred.APIKey == "" {
			return nil, goerr.New("OpenAI provider requires API key")
		}
		client, err := openai.New(ctx, cred.APIKey, openai.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create OpenAI client")
		}
		return client, nil
	}

	return nil, goerr.New("unsupported LLM provider", goerr.V("provider", provider))
}
