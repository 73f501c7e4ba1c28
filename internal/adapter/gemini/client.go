// Package gemini calls the Gemini generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"chatmint-studio/config"
	"chatmint-studio/pkg/apperror"

	"github.com/rs/zerolog"
)

// SystemInstruction frames every reply as a single short idea.
const SystemInstruction = "You are ChatMint AI. You help users create simple, original ideas that could be registered as IP. " +
	"When you answer, follow these rules strictly: use plain conversational English, do not use headings, " +
	"do not use bullet points, do not use numbering, do not use quotes, do not use markdown, and keep the answer short, " +
	"about three to six sentences. Give only one idea in each reply, not multiple variations."

const (
	serviceName  = "Gemini"
	maxErrorBody = 8 << 10
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.ChatModel.
type Client struct {
	httpClient HTTPClient
	cfg        config.GeminiConfig
	log        zerolog.Logger
}

// NewClient creates a Gemini client.
func NewClient(cfg config.GeminiConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{httpClient: httpClient, cfg: cfg, log: log}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	SystemInstruction content          `json:"systemInstruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Reason string `json:"reason"`
		} `json:"details"`
	} `json:"error"`
}

// Generate sends one user prompt and returns the model's text reply.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", apperror.ErrCollaboratorAuth(serviceName, "GEMINI api key is not configured.")
	}

	payload, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: SystemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     c.cfg.Temperature,
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.Model), url.QueryEscape(c.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the endpoint, which carries the key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return "", uerr.Err
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.decodeError(resp)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding gemini response: %w", err)
	}
	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked: %s", out.PromptFeedback.BlockReason)
	}
	if len(out.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("gemini returned an empty reply (finish reason %s)", out.Candidates[0].FinishReason)
	}
	return reply, nil
}

// decodeError turns an error body into a message carrying Gemini's status
// and reason codes, e.g. "API key not valid (INVALID_ARGUMENT, API_KEY_INVALID)".
func (c *Client) decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var e errorResponse
	_ = json.Unmarshal(body, &e)
	c.log.Warn().Int("status", resp.StatusCode).Str("gemini_status", e.Error.Status).Msg("gemini: non-200 response")

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperror.ErrCollaboratorAuth(serviceName, "Please check gemini.api_key.")
	case http.StatusTooManyRequests:
		return apperror.ErrQuotaExceeded()
	}
	if e.Error.Message == "" {
		return fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	codes := []string{}
	if e.Error.Status != "" {
		codes = append(codes, e.Error.Status)
	}
	for _, d := range e.Error.Details {
		if d.Reason != "" {
			codes = append(codes, d.Reason)
		}
	}
	if len(codes) == 0 {
		return errors.New(e.Error.Message)
	}
	return fmt.Errorf("%s (%s)", e.Error.Message, strings.Join(codes, ", "))
}
