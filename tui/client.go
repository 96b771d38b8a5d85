package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"autotube/types"
)

// APIClient is a thin HTTP client for the autotube API.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a client for the given server URL.
func NewAPIClient(baseURL string) *APIClient {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// GetConfig fetches the current configuration.
func (c *APIClient) GetConfig() (*types.Configuration, error) {
	resp, err := c.client.Get(c.baseURL + "/api/config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var cfg types.Configuration
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &cfg, nil
}

// GetVideos fetches all stored video records.
func (c *APIClient) GetVideos() ([]types.VideoRecord, error) {
	resp, err := c.client.Get(c.baseURL + "/api/videos")
	if err != nil {
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Videos []types.VideoRecord `json:"videos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return payload.Videos, nil
}

// Generate triggers a generation run for the configured topic.
func (c *APIClient) Generate(topic string) error {
	body, err := json.Marshal(map[string]string{"topic": topic})
	if err != nil {
		return err
	}

	resp, err := c.client.Post(c.baseURL+"/api/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to trigger generation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
