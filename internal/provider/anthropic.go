package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// NewAnthropicClient returns a client using API key from the env.
func NewAnthropicClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

// NewAnthropicClientWithKey returns a client with an explicitly supplied API key,
// for callers that resolve configuration themselves.
func NewAnthropicClientWithKey(apiKey string) *anthropic.Client {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c
}

const DefaultModel = anthropic.ModelClaudeSonnet4_20250514
