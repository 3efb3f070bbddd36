package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// GeminiService is the single boundary to the hosted model. Every flow
// sends a fixed instruction prompt and expects the reply to be one JSON
// object matching the flow's declared output shape; anything else is a
// failed call, never a partially-trusted record.
type GeminiService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeminiService() *GeminiService {
	base := os.Getenv("GEMINI_BASE_URL")
	if base == "" {
		base = defaultGeminiURL
	}
	return &GeminiService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64 payload without the data-URI prefix
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Prompt sends a text-only request and returns the raw model reply.
func (s *GeminiService) Prompt(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, []geminiPart{{Text: prompt}})
}

// PromptWithImage sends the instruction alongside an inline image.
func (s *GeminiService) PromptWithImage(ctx context.Context, prompt, mimeType, base64Data string) (string, error) {
	parts := []geminiPart{
		{Text: prompt},
		{InlineData: &inlineData{MimeType: mimeType, Data: base64Data}},
	}
	return s.generate(ctx, parts)
}

func (s *GeminiService) generate(ctx context.Context, parts []geminiPart) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	payload := geminiRequest{Contents: []geminiContent{{Parts: parts}}}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal model request: %w", err)
	}

	u := fmt.Sprintf("%s?key=%s", s.baseURL, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call model API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse model response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty model response")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// CleanModelJSON strips markdown fences and any prose around the first JSON
// object so the reply can be unmarshaled against the declared schema.
func CleanModelJSON(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end != -1 && end > start {
		response = response[start : end+1]
	}
	return response
}
