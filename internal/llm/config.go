// Package llm provides centralized completion-model configuration and
// client abstractions over the supported providers.
package llm

// Provider represents a completion-model provider.
type Provider string

// Supported providers.
const (
	// ProviderGroq is the Groq OpenAI-compatible API (default).
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini API.
	ProviderGemini Provider = "gemini"
)

// Sampling parameters shared by all providers. A low temperature and a
// bounded output cap favor deterministic, well-formed JSON over prose.
const (
	completionTemperature = 0.3
	maxOutputTokens       = 1500
)

// Config holds the completion-model configuration.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Groq).
func DefaultConfig() *Config {
	return DefaultGroqConfig()
}

// DefaultGroqConfig returns the default Groq configuration.
func DefaultGroqConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		Model:    "llama-3.1-8b-instant",
	}
}

// DefaultGeminiConfig returns the default Gemini configuration.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// WithModel returns a copy of the config using the given model name.
func (c *Config) WithModel(model string) *Config {
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}
