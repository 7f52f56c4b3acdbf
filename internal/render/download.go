package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Save writes a generation result to path: inline base64 data directly,
// otherwise by downloading the hosted URL.
func Save(ctx context.Context, res Result, path string) error {
	if res.B64Data != "" {
		data, err := base64.StdEncoding.DecodeString(res.B64Data)
		if err != nil {
			return fmt.Errorf("decode image data: %w", err)
		}
		return os.WriteFile(path, data, 0644)
	}
	if res.URL == "" {
		return fmt.Errorf("result has neither URL nor inline data")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.URL, nil)
	if err != nil {
		return fmt.Errorf("create download request: %w", err)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download image: HTTP %d", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write image file: %w", err)
	}
	return nil
}
