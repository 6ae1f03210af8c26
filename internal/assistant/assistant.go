// Package assistant answers tenant questions through the Gemini
// generateContent API, grounded on the live knowledge base. Failures never
// reach the caller as errors: the chat surface always gets a localized
// message it can render directly.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

const (
	msgMissingKey      = "API Key not configured. Please check environment variables."
	msgConnectionError = "連線發生錯誤，請檢查網路或稍後再試。"
	msgEmptyReply      = "抱歉，我現在無法回答，請稍後再試。"
)

// Config parameterizes the Gemini client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Service is the chat assistant. The knowledge base is rebuilt from the state
// store on every request, so edits to the wiki are reflected immediately.
type Service struct {
	client *resty.Client
	cfg    Config
	store  *store.Store
	logger *slog.Logger
}

// New constructs an assistant service.
func New(cfg Config, st *store.Store, logger *slog.Logger) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Service{client: client, cfg: cfg, store: st, logger: logger}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
	Role  string         `json:"role,omitempty"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// Chat sends the user message and returns the assistant reply. Transport and
// API failures are logged and surfaced as localized fallback text.
func (s *Service) Chat(ctx context.Context, message string) string {
	if s.cfg.APIKey == "" {
		return msgMissingKey
	}

	reqBody := generateRequest{
		SystemInstruction: &generateContent{Parts: []generatePart{{Text: s.systemInstruction()}}},
		Contents:          []generateContent{{Role: "user", Parts: []generatePart{{Text: message}}}},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", s.cfg.APIKey).
		SetBody(&reqBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", s.cfg.Model))
	if err != nil {
		s.logger.ErrorContext(ctx, "assistant request failed", "error", err)
		return msgConnectionError
	}
	if resp.StatusCode() != http.StatusOK {
		s.logger.ErrorContext(ctx, "assistant request rejected", "status", resp.StatusCode(), "body", resp.String())
		return msgConnectionError
	}

	var parsed generateResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		s.logger.ErrorContext(ctx, "assistant response does not parse", "error", err)
		return msgConnectionError
	}

	var reply strings.Builder
	if len(parsed.Candidates) > 0 {
		for _, part := range parsed.Candidates[0].Content.Parts {
			reply.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(reply.String()) == "" {
		return msgEmptyReply
	}
	return reply.String()
}

// systemInstruction assembles the prompt from branches, wiki guides, and the
// house rules.
func (s *Service) systemInstruction() string {
	var branches []string
	for _, b := range domain.SeedBranches() {
		branches = append(branches, fmt.Sprintf("%s at %s", b.Name, b.Address))
	}

	var guides []string
	if s.store != nil {
		for _, item := range s.store.WikiItems() {
			if item.ContentType != domain.ContentGuide {
				continue
			}
			guides = append(guides, fmt.Sprintf("%s: %s", item.Title, strings.Join(item.Instructions, ", ")))
		}
	}

	return fmt.Sprintf(`You are the AI Assistant for Daoteng Coworking Space (道騰國際共享空間).
Your goal is to help tenants solve problems instantly and guide potential customers.

Here is the knowledge base:
[LOCATIONS]
%s

[EQUIPMENT & WIFI]
%s

[RULES]
%s

[EMERGENCY]
Wifi Password for guests: daoteng888.
Admin contact: 07-123-4567.

If a user asks about something not in this list, politely suggest they use the "Report Issue" button or contact admin.
Keep answers short, friendly, and formatted nicely (use bullet points if needed).
Respond in Traditional Chinese (繁體中文).`,
		strings.Join(branches, "\n"),
		strings.Join(guides, "\n"),
		strings.Join(domain.HouseRules, "\n"))
}
