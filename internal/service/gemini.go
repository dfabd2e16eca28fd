package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "volunteer-scheduler-backend/internal/errors"

	"google.golang.org/genai"
)

// GeminiClient produces JSON through the Gemini API
type GeminiClient struct {
	model     string
	client    *genai.Client
	clientErr error
}

// NewGeminiClient creates a client. An empty apiKey is accepted here and
// reported on the first call. baseURL may carry the API version as its last
// path segment, e.g. https://generativelanguage.googleapis.com/v1beta.
func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration) *GeminiClient {
	c := &GeminiClient{model: model}
	if apiKey == "" {
		c.clientErr = apperrors.ErrGeminiAPIKeyNotSet
		return c
	}

	base, version := splitAPIVersion(baseURL)
	c.client, c.clientErr = genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    base,
			APIVersion: version,
		},
	})
	return c
}

// GenerateJSON sends prompt with a response schema and returns the text of
// the first candidate. Every failure is a GenerationError.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if errors.Is(c.clientErr, apperrors.ErrGeminiAPIKeyNotSet) {
		return "", apperrors.NewGenerationError("AI service is not configured", c.clientErr)
	}
	if c.clientErr != nil {
		return "", apperrors.NewGenerationError("failed to create client", c.clientErr)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", apperrors.NewGenerationError(fmt.Sprintf("model returned status %d", apiErr.Code), err)
		}
		return "", apperrors.NewGenerationError("request failed", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", apperrors.NewGenerationError("model returned no content", nil)
	}
	return text, nil
}

// splitAPIVersion turns ".../v1beta" into (".../", "v1beta"). A URL without
// a version segment is returned as is with an empty version.
func splitAPIVersion(baseURL string) (string, string) {
	baseURL = strings.TrimRight(baseURL, "/")
	i := strings.LastIndex(baseURL, "/")
	if i < 0 || !strings.HasPrefix(baseURL[i+1:], "v1") {
		return baseURL, ""
	}
	return baseURL[:i+1], baseURL[i+1:]
}
