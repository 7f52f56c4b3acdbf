// Package render turns a finished prompt into an image via an external
// image-generation API. The pipeline never depends on this package; callers
// wire the two together.
package render

import "context"

// Provider is the interface for image-generation backends.
type Provider interface {
	// Name returns the provider name (e.g., "grok", "openai")
	Name() string

	// Available returns true if the provider is configured and ready
	Available() bool

	// Generate submits a prompt and returns the generated image reference
	Generate(ctx context.Context, req Request) (Result, error)
}

// Request describes one image generation.
type Request struct {
	Prompt string
	Size   string // e.g. "1024x1024"; providers may ignore it
}

// Result is the provider's answer: either a URL to download or inline
// base64 data, depending on the API.
type Result struct {
	URL     string
	B64Data string
	Model   string
}

// Manager holds the configured providers and picks the first available one,
// preferring an explicitly requested name.
type Manager struct {
	providers []Provider
	preferred string
}

// NewManager creates an empty provider manager.
func NewManager() *Manager {
	return &Manager{providers: make([]Provider, 0)}
}

// Add appends a provider.
func (m *Manager) Add(p Provider) {
	m.providers = append(m.providers, p)
}

// SetPreferred sets the preferred provider by name.
func (m *Manager) SetPreferred(name string) {
	m.preferred = name
}

// Pick returns the preferred provider when it is available, otherwise the
// first available one, otherwise nil.
func (m *Manager) Pick() Provider {
	if m.preferred != "" {
		for _, p := range m.providers {
			if p.Name() == m.preferred && p.Available() {
				return p
			}
		}
	}
	for _, p := range m.providers {
		if p.Available() {
			return p
		}
	}
	return nil
}

// ListAvailable returns the names of all available providers.
func (m *Manager) ListAvailable() []string {
	var names []string
	for _, p := range m.providers {
		if p.Available() {
			names = append(names, p.Name())
		}
	}
	return names
}
