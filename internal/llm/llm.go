package llm

import (
	"fmt"
	"net/http"
	"time"
)

// shared HTTP client for provider API calls
var providerHTTPClient = &http.Client{
	Timeout: 90 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// creates the text generator for the configured provider
func NewTextGenerator(config Config) (TextGenerator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required for provider %s", config.Provider)
	}

	switch config.Provider {
	case ProviderAnthropic:
		return NewAnthropicGenerator(config), nil
	case ProviderOpenAI, "":
		return NewOpenAIGenerator(config), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", config.Provider)
	}
}
