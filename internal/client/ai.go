package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"
)

// AIService adalah HTTP client ke AI microservice (chat, voice, biometrics).
// Response body diteruskan apa adanya ke caller.
type AIService struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewAIService(baseURL string, httpClient *http.Client, log *zap.Logger) *AIService {
	return &AIService{
		baseURL: baseURL,
		http:    httpClient,
		log:     log.With(zap.String("client", "ai")),
	}
}

// VerifyResult adalah jawaban endpoint /biometrics/verify
type VerifyResult struct {
	Verified bool    `json:"verified"`
	Distance float64 `json:"distance"`
	Error    string  `json:"error,omitempty"`
}

// GenerateChat forwards a JSON chat payload verbatim and returns the raw
// response body
func (c *AIService) GenerateChat(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// VoiceChat re-wraps an uploaded audio file as multipart form data,
// preserving the original filename
func (c *AIService) VoiceChat(ctx context.Context, filename string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy audio file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/voice", &buf)
	if err != nil {
		return nil, fmt.Errorf("build voice request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

// VerifyFace asks the biometric verifier to match a captured sample against
// the stored reference
func (c *AIService) VerifyFace(ctx context.Context, capturedImage, storedImage string) (*VerifyResult, error) {
	payload := map[string]string{
		"captured_image": capturedImage,
		"stored_image":   storedImage,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal verify payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/biometrics/verify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result VerifyResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}

	return &result, nil
}

func (c *AIService) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("AI service request failed",
			zap.Error(err),
			zap.String("url", req.URL.String()),
		)
		return nil, fmt.Errorf("call AI service %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read AI service response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("AI service returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("url", req.URL.String()),
		)
		return nil, fmt.Errorf("AI service %s returned status %d", req.URL.Path, resp.StatusCode)
	}

	return body, nil
}
