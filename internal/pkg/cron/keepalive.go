package cron

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// KeepAliveJob pings the application's own /health endpoint so free-tier
// hosts do not put the instance to sleep.
func KeepAliveJob(baseURL string) func(ctx context.Context) error {
	url := baseURL
	if !strings.HasSuffix(url, "/health") {
		url = strings.TrimRight(url, "/") + "/health"
	}

	client := &http.Client{Timeout: 10 * time.Second}

	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("keep-alive ping: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("keep-alive ping returned status %d", resp.StatusCode)
		}
		return nil
	}
}
