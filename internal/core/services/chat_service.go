package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/ulule/limiter/v3"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// chatRateLimitKey: the chat gate is process-wide, not per-client, so every
// request shares one limiter bucket.
const chatRateLimitKey = "chat-global"

const chatSystemPrompt = `You are a multilingual expert agricultural and weather advisor. Your role is to:
1. Provide specific, practical farming advice
2. Explain weather patterns and their impact on crops
3. Suggest best practices for crop management
4. Answer questions about soil health and irrigation
5. Provide pest control and disease management advice
6. Give sustainable farming recommendations

Format your responses following these rules:
- Use proper punctuation
- Start each new point on a new line
- Use numbers (1, 2, 3) for sequential steps
- Use bullet points (•) for lists
- Never use asterisks (*) or other special characters for formatting

Respond in the same language as the user's question.
Keep responses concise, practical, and focused on farming and weather-related topics.
If asked about topics unrelated to farming or weather, politely redirect to agricultural topics.`

// chatService proxies questions to the Gemini API behind a shared
// admission gate.
type chatService struct {
	BaseService
	apiKey     string
	baseURL    string
	httpClient *http.Client
	gate       *limiter.Limiter
}

// ChatOption customizes the chat service.
type ChatOption func(*chatService)

func WithChatBaseURL(baseURL string) ChatOption {
	return func(s *chatService) { s.baseURL = baseURL }
}

func WithChatHTTPClient(client *http.Client) ChatOption {
	return func(s *chatService) { s.httpClient = client }
}

// NewChatService creates a new chat service. The limiter instance provides
// the process-wide request gate; its store does the atomic check-and-set.
func NewChatService(apiKey string, gate *limiter.Limiter, opts ...ChatOption) portssvc.ChatSvcFacade {
	s := &chatService{
		apiKey:     apiKey,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		gate:       gate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type geminiRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
		TopK            int     `json:"topK"`
		TopP            float64 `json:"topP"`
	} `json:"generationConfig"`
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

func newGeminiRequest(message string) geminiRequest {
	var req geminiRequest
	req.Contents = make([]struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}, 1)
	req.Contents[0].Role = "user"
	req.Contents[0].Parts = make([]struct {
		Text string `json:"text"`
	}, 1)
	req.Contents[0].Parts[0].Text = chatSystemPrompt + "\n\nUser message: " + message
	req.GenerationConfig.Temperature = 0.7
	req.GenerationConfig.MaxOutputTokens = 800
	req.GenerationConfig.TopK = 40
	req.GenerationConfig.TopP = 0.95
	return req
}

func (s *chatService) Ask(ctx context.Context, message string) (string, error) {
	if s.apiKey == "" {
		return "", apperrors.NewInternalError("Chat provider not configured", errors.New("gemini api key missing"))
	}

	lctx, err := s.gate.Get(ctx, chatRateLimitKey)
	if err != nil {
		return "", fmt.Errorf("failed to check chat rate limit: %w", err)
	}
	if lctx.Reached {
		return "", apperrors.NewAppError(http.StatusTooManyRequests, "Please wait a moment before sending another message.", nil)
	}

	body, err := json.Marshal(newGeminiRequest(message))
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"?key="+s.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamError("Failed to get response from AI. Please try again.", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", apperrors.NewAppError(http.StatusTooManyRequests, "Please wait a moment before sending another message.", nil)
	case http.StatusUnauthorized:
		return "", apperrors.NewAppError(http.StatusUnauthorized, "Invalid API key. Please check your configuration.", nil)
	default:
		s.LogWarn(ctx, "chat provider returned non-200", "status", resp.StatusCode)
		return "", apperrors.NewInternalError("Failed to get response from AI. Please try again.", fmt.Errorf("provider status %d", resp.StatusCode))
	}

	var payload geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apperrors.NewInternalError("Failed to get response from AI. Please try again.", err)
	}

	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewInternalError("Failed to get response from AI. Please try again.", errors.New("empty candidate list"))
	}

	return cleanChatReply(payload.Candidates[0].Content.Parts[0].Text), nil
}

var (
	asteriskRe       = regexp.MustCompile(`\*+`)
	numberedPointRe  = regexp.MustCompile(`(\d+\.)\s*`)
	bulletRe         = regexp.MustCompile(`•\s*`)
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// cleanChatReply strips markdown emphasis and reflows numbered and bulleted
// points onto their own lines, mirroring the formatting rules of the prompt.
func cleanChatReply(reply string) string {
	reply = asteriskRe.ReplaceAllString(reply, "")
	reply = numberedPointRe.ReplaceAllString(reply, "\n$1 ")
	reply = bulletRe.ReplaceAllString(reply, "\n• ")
	reply = excessNewlinesRe.ReplaceAllString(reply, "\n\n")

	lines := strings.Split(reply, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
