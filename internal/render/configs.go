package render

import (
	"encoding/json"
	"fmt"
	"os"
)

// Provider configurations

// GrokConfig targets the xAI image generations endpoint.
func GrokConfig() *ProviderConfig {
	apiKey := os.Getenv("GROK_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("XAI_API_KEY")
	}
	return &ProviderConfig{
		Name:          "grok",
		Endpoint:      "https://api.x.ai/v1/images/generations",
		APIKey:        apiKey,
		Model:         getEnvOr("GROK_IMAGE_MODEL", "grok-imagine-image"),
		AuthHeader:    "Authorization",
		AuthPrefix:    "Bearer ",
		BuildBody:     buildGenerationsBody,
		ParseResponse: parseGenerationsResponse,
	}
}

// OpenAIConfig targets the OpenAI images endpoint, which shares the
// generations wire format.
func OpenAIConfig() *ProviderConfig {
	return &ProviderConfig{
		Name:          "openai",
		Endpoint:      "https://api.openai.com/v1/images/generations",
		APIKey:        os.Getenv("OPENAI_API_KEY"),
		Model:         getEnvOr("OPENAI_IMAGE_MODEL", "dall-e-3"),
		AuthHeader:    "Authorization",
		AuthPrefix:    "Bearer ",
		BuildBody:     buildGenerationsBody,
		ParseResponse: parseGenerationsResponse,
	}
}

// DefaultManager wires up all known providers, preferring the given name.
func DefaultManager(preferred string) *Manager {
	m := NewManager()
	m.Add(NewHTTPProvider(GrokConfig()))
	m.Add(NewHTTPProvider(OpenAIConfig()))
	m.SetPreferred(preferred)
	return m
}

// buildGenerationsBody builds the shared images/generations request body.
func buildGenerationsBody(cfg *ProviderConfig, req Request) map[string]any {
	body := map[string]any{
		"model":  cfg.Model,
		"prompt": req.Prompt,
		"n":      1,
	}
	if req.Size != "" {
		body["size"] = req.Size
	}
	return body
}

// generationsResponse is the common response shape of the generations APIs:
// a data array with either a hosted URL or inline base64 per image.
type generationsResponse struct {
	Data []struct {
		URL     string `json:"url"`
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

func parseGenerationsResponse(body []byte) (Result, error) {
	var resp generationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{}, fmt.Errorf("decode generations response: %w", err)
	}
	if len(resp.Data) == 0 {
		return Result{}, fmt.Errorf("generations response contains no images")
	}
	return Result{URL: resp.Data[0].URL, B64Data: resp.Data[0].B64JSON}, nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
