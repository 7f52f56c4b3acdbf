package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/goelo/newspanel/internal/logging"
)

var _ Provider = (*HTTPProvider)(nil)

// ProviderConfig defines how to talk to one image-generation API.
type ProviderConfig struct {
	Name       string
	Endpoint   string
	APIKey     string
	Model      string
	AuthHeader string // "Authorization" or a vendor header
	AuthPrefix string // "" or "Bearer "

	// Request building
	BuildBody func(cfg *ProviderConfig, req Request) map[string]any

	// Response parsing
	ParseResponse func(body []byte) (Result, error)
}

// HTTPProvider is a generic HTTP-based image provider. Image endpoints tend
// to rate-limit aggressively, so every request passes a limiter first.
type HTTPProvider struct {
	config  *ProviderConfig
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPProvider creates a provider from config.
func NewHTTPProvider(cfg *ProviderConfig) *HTTPProvider {
	return &HTTPProvider{
		config:  cfg,
		client:  &http.Client{Timeout: 180 * time.Second},
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

func (p *HTTPProvider) Name() string {
	return p.config.Name
}

func (p *HTTPProvider) Available() bool {
	return p.config.APIKey != ""
}

func (p *HTTPProvider) Generate(ctx context.Context, req Request) (Result, error) {
	if !p.Available() {
		return Result{}, fmt.Errorf("%s provider not configured", p.config.Name)
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}

	logging.Debug("image request", "provider", p.config.Name, "model", p.config.Model)

	body := p.config.BuildBody(p.config, req)
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.Endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(p.config.AuthHeader, p.config.AuthPrefix+p.config.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logging.Error("image API error", "provider", p.config.Name, "status", resp.StatusCode, "body", string(respBody))
		return Result{}, fmt.Errorf("%s API error: HTTP %d", p.config.Name, resp.StatusCode)
	}

	result, err := p.config.ParseResponse(respBody)
	if err != nil {
		return Result{}, fmt.Errorf("parse response: %w", err)
	}
	if result.Model == "" {
		result.Model = p.config.Model
	}
	return result, nil
}
