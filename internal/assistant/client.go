package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config controls how the client reaches the external assistant.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts roster questions to the external assistant and maps the
// answers back.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs an assistant client with the provided configuration.
func NewClient(cfg Config) *Client {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: client,
	}
}

// Ask sends the user's question with a serialized state snapshot and
// returns the assistant's answer. Failures leave no trace in local state.
func (c *Client) Ask(ctx context.Context, snapshot, question string) (Answer, error) {
	payload, err := json.Marshal(askRequest{Question: question, Context: snapshot})
	if err != nil {
		return Answer{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/answers", bytes.NewReader(payload))
	if err != nil {
		return Answer{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Answer{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Answer{}, fmt.Errorf("assistant: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded askResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Answer{}, err
	}
	return mapAnswer(decoded), nil
}

func mapAnswer(resp askResponse) Answer {
	answer := Answer{Text: resp.Text}
	for _, s := range resp.Sources {
		if s.URI == "" && s.Title == "" {
			continue
		}
		answer.Sources = append(answer.Sources, Source{URI: s.URI, Title: s.Title})
	}
	return answer
}
