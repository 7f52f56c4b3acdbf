package render

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildGenerationsBody(t *testing.T) {
	cfg := &ProviderConfig{Model: "grok-imagine-image"}

	body := buildGenerationsBody(cfg, Request{Prompt: "a retro news studio"})
	if body["model"] != "grok-imagine-image" {
		t.Errorf("model = %v", body["model"])
	}
	if body["prompt"] != "a retro news studio" {
		t.Errorf("prompt = %v", body["prompt"])
	}
	if body["n"] != 1 {
		t.Errorf("n = %v", body["n"])
	}
	if _, ok := body["size"]; ok {
		t.Error("size set without request size")
	}

	body = buildGenerationsBody(cfg, Request{Prompt: "p", Size: "1024x1024"})
	if body["size"] != "1024x1024" {
		t.Errorf("size = %v", body["size"])
	}
}

func TestParseGenerationsResponse(t *testing.T) {
	t.Run("url", func(t *testing.T) {
		res, err := parseGenerationsResponse([]byte(`{"data":[{"url":"https://img.example/x.png"}]}`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if res.URL != "https://img.example/x.png" {
			t.Errorf("URL = %q", res.URL)
		}
	})

	t.Run("b64", func(t *testing.T) {
		res, err := parseGenerationsResponse([]byte(`{"data":[{"b64_json":"aGk="}]}`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if res.B64Data != "aGk=" {
			t.Errorf("B64Data = %q", res.B64Data)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		if _, err := parseGenerationsResponse([]byte(`{"data":[]}`)); err == nil {
			t.Error("expected error for empty data array")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := parseGenerationsResponse([]byte(`not json`)); err == nil {
			t.Error("expected error for invalid JSON")
		}
	})
}

func TestHTTPProviderGenerate(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"url":"https://img.example/out.png"}]}`))
	}))
	defer server.Close()

	cfg := GrokConfig()
	cfg.Endpoint = server.URL
	cfg.APIKey = "test-key"
	p := NewHTTPProvider(cfg)

	res, err := p.Generate(context.Background(), Request{Prompt: "a retro news studio"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if res.URL != "https://img.example/out.png" {
		t.Errorf("URL = %q", res.URL)
	}
	if res.Model != cfg.Model {
		t.Errorf("Model = %q, want %q", res.Model, cfg.Model)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody["prompt"] != "a retro news studio" {
		t.Errorf("request prompt = %v", gotBody["prompt"])
	}
}

func TestHTTPProviderGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := GrokConfig()
	cfg.Endpoint = server.URL
	cfg.APIKey = "test-key"

	if _, err := NewHTTPProvider(cfg).Generate(context.Background(), Request{Prompt: "p"}); err == nil {
		t.Error("expected error for HTTP 429")
	}
}

func TestHTTPProviderUnavailable(t *testing.T) {
	cfg := GrokConfig()
	cfg.APIKey = ""
	p := NewHTTPProvider(cfg)

	if p.Available() {
		t.Error("provider with empty key reports available")
	}
	if _, err := p.Generate(context.Background(), Request{Prompt: "p"}); err == nil {
		t.Error("expected error from unconfigured provider")
	}
}

type fakeProvider struct {
	name      string
	available bool
}

func (f fakeProvider) Name() string    { return f.name }
func (f fakeProvider) Available() bool { return f.available }
func (f fakeProvider) Generate(ctx context.Context, req Request) (Result, error) {
	return Result{}, nil
}

func TestManagerPick(t *testing.T) {
	m := NewManager()
	m.Add(fakeProvider{name: "grok", available: false})
	m.Add(fakeProvider{name: "openai", available: true})

	if p := m.Pick(); p == nil || p.Name() != "openai" {
		t.Errorf("Pick() = %v, want fallback to openai", p)
	}

	m.SetPreferred("grok")
	if p := m.Pick(); p == nil || p.Name() != "openai" {
		t.Errorf("Pick() with unavailable preferred = %v, want openai", p)
	}

	m.Add(fakeProvider{name: "grok2", available: true})
	m.SetPreferred("grok2")
	if p := m.Pick(); p == nil || p.Name() != "grok2" {
		t.Errorf("Pick() = %v, want preferred grok2", p)
	}
}

func TestSaveInlineData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	data := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	if err := Save(context.Background(), Result{B64Data: data}, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != "fake image bytes" {
		t.Errorf("saved content = %q", got)
	}
}

func TestSaveFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("downloaded bytes"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(context.Background(), Result{URL: server.URL}, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "downloaded bytes" {
		t.Errorf("saved content = %q", got)
	}
}

func TestSaveEmptyResult(t *testing.T) {
	if err := Save(context.Background(), Result{}, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("expected error for empty result")
	}
}
