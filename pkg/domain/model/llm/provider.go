package llm

// Provider identifies an LLM provider backend
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
)

// ProviderFromString converts a string to a Provider
func ProviderFromString(s string) Provider {
	return Provider(s)
}

// IsValid checks if the provider is a known backend
func (p Provider) IsValid() bool {
	switch p {
	case ProviderGemini, ProviderClaude, ProviderOpenAI:
		return true
	}
	return false
}

// DefaultConfig selects the provider and model used for agent sessions
type DefaultConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// ProvidersConfig is the LLM providers configuration, loaded from the
// embedded template or an operator-supplied YAML file.
type ProvidersConfig struct {
	Defaults     DefaultConfig `yaml:"defaults"`
	SystemPrompt string        `yaml:"system_prompt,omitempty"`
}
