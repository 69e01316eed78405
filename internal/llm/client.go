// Package llm talks to the model endpoint over its OpenAI-compatible REST
// API and extracts typed findings from whatever text comes back.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrUnavailable marks transport-level failures against the model endpoint:
// connection refused, timeout, or a non-2xx status. Callers surface it as an
// "analysis unavailable" result instead of failing the request outright.
var ErrUnavailable = errors.New("analysis unavailable")

const systemPrompt = "You are a security code analysis expert. Analyze code for security vulnerabilities and return results as structured JSON."

// Client is a thin wrapper over the endpoint's chat-completions API.
type Client struct {
	httpc *resty.Client
	model string
}

// New creates a Client against the given base URL. The resty client carries
// timeout, retry, and TLS settings from the shared HTTP configuration.
func New(httpc *resty.Client, baseURL, model, apiKey string) *Client {
	httpc.SetBaseURL(strings.TrimRight(baseURL, "/"))
	if apiKey != "" {
		httpc.SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	}

	return &Client{
		httpc: httpc,
		model: model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends preprocessed code with a language-specific rules prompt and
// returns the model's raw text answer.
func (c *Client) Analyze(ctx context.Context, code, rulesPrompt string) (string, error) {
	fullPrompt := fmt.Sprintf("%s\n\nCode to analyze:\n```\n%s\n```\n\nProvide your analysis as a JSON array of security issues.", rulesPrompt, code)

	body := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fullPrompt},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	}

	var result chatCompletionResponse
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: endpoint returned %s", ErrUnavailable, resp.Status())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: endpoint returned no choices", ErrUnavailable)
	}

	return result.Choices[0].Message.Content, nil
}

// HealthStatus describes the reachability of the model endpoint.
type HealthStatus struct {
	Status    string   `json:"status"`
	Available bool     `json:"available"`
	Models    []string `json:"models,omitempty"`
	Error     string   `json:"error,omitempty"`
	BaseURL   string   `json:"base_url"`
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Health probes the endpoint's model listing. It never returns an error:
// unreachability is part of the status.
func (c *Client) Health(ctx context.Context) HealthStatus {
	status := HealthStatus{BaseURL: c.httpc.BaseURL}

	var result modelsResponse
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/v1/models")
	if err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}
	if resp.IsError() {
		status.Status = "unhealthy"
		status.Error = fmt.Sprintf("endpoint returned %s", resp.Status())
		return status
	}

	status.Status = "healthy"
	status.Available = true
	for _, m := range result.Data {
		status.Models = append(status.Models, m.ID)
	}
	return status
}
