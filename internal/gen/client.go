// Package gen wraps the Cohere v2 chat API used for both text
// generation (chart code, QA pairs) and vision judging. Every failure
// mode (network, non-2xx status, empty content) surfaces as a plain
// error; the retry loop owns the decision to try again.
package gen

// #region imports
import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// #endregion

// #region constants

const defaultBaseURL = "https://api.cohere.com"

// #endregion

// #region wire-types

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Message struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

// #endregion wire-types

// #region client

// Client talks to the generation service.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a generation client. The API key comes from the
// environment via config; it is never embedded in source or config
// files.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generation api key not set")
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// SetBaseURL overrides the service endpoint. Used for tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// #endregion client

// #region chat

// Chat sends a single user message and returns the response text.
func (c *Client) Chat(ctx context.Context, model, promptText string) (string, error) {
	blocks := []contentBlock{{Type: "text", Text: promptText}}
	return c.send(ctx, model, blocks)
}

// ChatWithImage sends a single user message carrying both the prompt
// and one image as a base64 data URL. Used for judge calls.
func (c *Client) ChatWithImage(ctx context.Context, model, promptText, imageDataURL string) (string, error) {
	blocks := []contentBlock{
		{Type: "text", Text: promptText},
		{Type: "image_url", ImageURL: &imageURL{URL: imageDataURL}},
	}
	return c.send(ctx, model, blocks)
}

func (c *Client) send(ctx context.Context, model string, blocks []contentBlock) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "user", Content: blocks},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse chat response: %w", err)
	}
	for _, block := range parsed.Message.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("empty chat response")
}

// #endregion chat
