// Package pinata publishes images and metadata documents to IPFS through
// the Pinata pinning API.
package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"chatmint-studio/config"
	"chatmint-studio/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	serviceName  = "Pinata"
	pinFilePath  = "/pinning/pinFileToIPFS"
	pinJSONPath  = "/pinning/pinJSONToIPFS"
	maxErrorBody = 4 << 10
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.ContentPinner.
type Client struct {
	httpClient HTTPClient
	apiURL     string
	gatewayURL string
	auth       string
	log        zerolog.Logger
}

// NewClient creates a Pinata client. The JWT may be given with or without
// the "Bearer " prefix.
func NewClient(cfg config.PinataConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	gateway := cfg.GatewayURL
	if gateway != "" && !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return &Client{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		gatewayURL: gateway,
		auth:       bearer(cfg.JWT),
		log:        log,
	}
}

func bearer(jwt string) string {
	jwt = strings.TrimSpace(jwt)
	if jwt == "" || strings.HasPrefix(jwt, "Bearer ") {
		return jwt
	}
	return "Bearer " + jwt
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinJSONRequest struct {
	PinataContent  any         `json:"pinataContent"`
	PinataMetadata pinMetadata `json:"pinataMetadata"`
}

// PinFile uploads raw file bytes and returns their gateway URI.
func (c *Client) PinFile(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	meta, _ := json.Marshal(pinMetadata{Name: filename})
	if err := w.WriteField("pinataMetadata", string(meta)); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}

	hash, err := c.pin(ctx, pinFilePath, w.FormDataContentType(), &body)
	if err != nil {
		return "", err
	}
	c.log.Info().Str("file", filename).Str("cid", hash).Int("bytes", len(data)).Msg("pinned file to ipfs")
	return c.gatewayURL + hash, nil
}

// PinJSON uploads a JSON document under name and returns its gateway URI.
func (c *Client) PinJSON(ctx context.Context, name string, document any) (string, error) {
	payload, err := json.Marshal(pinJSONRequest{
		PinataContent:  document,
		PinataMetadata: pinMetadata{Name: name},
	})
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}

	hash, err := c.pin(ctx, pinJSONPath, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	c.log.Info().Str("name", name).Str("cid", hash).Msg("pinned metadata to ipfs")
	return c.gatewayURL + hash, nil
}

func (c *Client) pin(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	if c.auth == "" {
		return "", apperror.ErrCollaboratorAuth(serviceName, "Please set PINATA_JWT.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, body)
	if err != nil {
		return "", fmt.Errorf("creating pinata request: %w", err)
	}
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", apperror.ErrCollaboratorAuth(serviceName, "Please check your PINATA_JWT and make sure it is valid and not expired.")
	case resp.StatusCode == http.StatusForbidden:
		return "", apperror.ErrCollaboratorPermission(serviceName, "Please verify your API key permissions.")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("pinata: non-2xx response")
		return "", apperror.ErrCollaboratorUnavailable(serviceName,
			fmt.Errorf("pinata upload failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))))
	}

	var out pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperror.ErrCollaboratorUnavailable(serviceName, fmt.Errorf("decoding pinata response: %w", err))
	}
	if out.IpfsHash == "" {
		return "", apperror.ErrCollaboratorUnavailable(serviceName, errors.New("pinata response missing IpfsHash"))
	}
	return out.IpfsHash, nil
}
