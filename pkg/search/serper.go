package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	serperEndpoint    = "https://google.serper.dev/search"
	serperResultLimit = 5
)

type SerperClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *SerperClient) Name() string {
	return "Serper"
}

func (c *SerperClient) Search(ctx context.Context, query string) ([]Snippet, error) {
	body, err := json.Marshal(map[string]interface{}{
		"q":   query,
		"gl":  "br",
		"hl":  "pt-br",
		"num": serperResultLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("serper encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serperEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper status %d", resp.StatusCode)
	}

	var raw serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serper decode: %w", err)
	}

	snippets := make([]Snippet, 0, len(raw.Organic))
	for _, item := range raw.Organic {
		snippets = append(snippets, Snippet{
			Titulo: item.Title,
			Trecho: item.Snippet,
			URL:    item.Link,
		})
	}

	return snippets, nil
}

type serperResponse struct {
	Organic []serperResult `json:"organic"`
}

type serperResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
