// Package llm provides a route planner backed by an OpenAI-compatible
// chat-completions endpoint. The model receives the depot and the list of
// drop-off addresses and answers with a suggested visiting order.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

const defaultRequestTimeout = 60 * time.Second

const systemPrompt = "You are a delivery route planner for a Singapore logistics company. " +
	"Given a depot and a list of drop-off addresses, propose an efficient visiting order. " +
	"Answer with a short numbered list, one stop per line, starting from the depot."

// ChatRoutePlanner implements ports.RoutePlanner over an OpenAI-compatible
// chat-completions API.
type ChatRoutePlanner struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewChatRoutePlanner creates a planner for the given endpoint.
// baseURL is the API root without the /chat/completions suffix.
func NewChatRoutePlanner(baseURL, apiKey, model string) (*ChatRoutePlanner, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if model == "" {
		return nil, errs.NewValueIsRequiredError("model")
	}

	return &ChatRoutePlanner{
		client:  &http.Client{Timeout: defaultRequestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// PlanRoute asks the model for a visiting order over the given stops.
func (p *ChatRoutePlanner) PlanRoute(ctx context.Context, depot string, addresses []string) (string, error) {
	if len(addresses) == 0 {
		return "", errs.NewValueIsRequiredError("addresses")
	}

	var prompt strings.Builder
	prompt.WriteString("Depot: " + depot + "\n")
	prompt.WriteString("Drop-off addresses:\n")
	for i, address := range addresses {
		fmt.Fprintf(&prompt, "%d. %s\n", i+1, address)
	}

	payload, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt.String()},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.baseURL+"/chat/completions",
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("route planner request failed: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("route planner request failed: status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("route planner returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
