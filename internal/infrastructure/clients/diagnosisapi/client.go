package diagnosisapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/fasalrakshak/backend/internal/domain/providers"
	"github.com/fasalrakshak/backend/pkg/config"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// Client calls the hosted crop image diagnosis API. It implements
// providers.RemoteDiagnosisProvider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ providers.RemoteDiagnosisProvider = (*Client)(nil)

// NewClient creates a new diagnosis API client
func NewClient(cfg *config.DiagnosisAPIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// DiagnoseImage uploads a crop photo as multipart form data and decodes
// the raw diagnosis payload. cropName, when set, is sent as a crop_type
// hint; language selects localized disease names.
func (c *Client) DiagnoseImage(ctx context.Context, image io.Reader, filename, cropName, language string) (*providers.RemoteDiagnosisPayload, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create multipart field", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, apperrors.NewInternalError("failed to read image", err)
	}
	if cropName != "" {
		if err := writer.WriteField("crop_type", cropName); err != nil {
			return nil, apperrors.NewInternalError("failed to write crop_type field", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewInternalError("failed to finalize multipart body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/diagnose", &body)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if language != "" {
		req.Header.Set("Accept-Language", language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("diagnosis API request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("diagnosis API returned status %d: %s", resp.StatusCode, string(respBody)), nil)
	}

	var payload providers.RemoteDiagnosisPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewExternalError("failed to decode diagnosis API response", err)
	}
	return &payload, nil
}

// Healthy reports whether the remote service answers its health check.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
