// Package groom cleans up raw todo lists: remotely through the HuggingFace
// inference API when a key is configured, locally otherwise. The local
// groomer also serves as the fallback when the remote call fails.
package groom

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service performs todo list grooming.
type Service struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewService creates a grooming service. A nil logger falls back to
// slog.Default.
func NewService(cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Groom cleans up a raw todo list. Remote failures degrade to the local
// groomer when fallback is enabled; only an empty input or a failure with
// fallback disabled produce an error.
func (s *Service) Groom(ctx context.Context, list string) (*Result, error) {
	if strings.TrimSpace(list) == "" {
		return nil, errors.New("empty todo list")
	}

	if !s.cfg.HasKey() {
		if !s.cfg.FallbackEnabled {
			return nil, errors.New("no AI service key configured and fallback is disabled")
		}
		return basicGroom(list), nil
	}

	res, err := s.groomWithHuggingFace(ctx, list)
	if err != nil {
		if !s.cfg.FallbackEnabled {
			return nil, err
		}
		s.logger.Warn("remote grooming failed, using basic grooming", "error", err)
		return basicGroom(list), nil
	}
	return res, nil
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

func (s *Service) groomWithHuggingFace(ctx context.Context, list string) (*Result, error) {
	prompt := GroomingPrompt(list, SelectPromptType(list))

	body, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens: 1000,
			Temperature:  0.3,
			DoSample:     true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := s.cfg.BaseURL + s.cfg.Model
	logger := s.logger.With("request_id", uuid.NewString(), "model", s.cfg.Model)

	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.retryDelay(attempt)):
			}
		}
		logger.Info("calling huggingface", "attempt", attempt+1)

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+s.cfg.HFAPIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			logger.Warn("request failed", "attempt", attempt+1, "error", err)
			continue
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return parseGenerated(data), nil
		case http.StatusServiceUnavailable:
			// The hosted model is still loading; worth waiting for.
			lastErr = errors.New("model is loading")
			logger.Info("model loading, will retry")
		default:
			return nil, fmt.Errorf("huggingface api error: status %d: %s",
				resp.StatusCode, strings.TrimSpace(string(data)))
		}
	}
	return nil, fmt.Errorf("huggingface api unavailable: %w", lastErr)
}

func (s *Service) retryDelay(attempt int) time.Duration {
	delay := s.cfg.RetryDelay
	if s.cfg.ExponentialBackoff {
		delay *= time.Duration(1 << (attempt - 1))
	}
	return delay
}

type hfGenerated struct {
	GeneratedText string `json:"generated_text"`
}

// parseGenerated turns an inference API response into a Result. It never
// fails outright: structured JSON is preferred, then list-shaped lines
// scraped from the text, then the basic groomer applied to the text itself.
func parseGenerated(data []byte) *Result {
	text := generatedText(data)

	if obj, ok := extractJSON(text); ok {
		var payload groomPayload
		if err := json.Unmarshal(obj, &payload); err == nil {
			if res := payload.toResult(); len(res.Tasks) > 0 {
				return res
			}
		}
	}
	if res := resultFromLines(text); res != nil {
		return res
	}
	return basicGroom(text)
}

// generatedText unwraps the inference API response shape: usually a list of
// generations, sometimes a single object.
func generatedText(data []byte) string {
	var many []hfGenerated
	if err := json.Unmarshal(data, &many); err == nil && len(many) > 0 {
		return many[0].GeneratedText
	}
	var one hfGenerated
	if err := json.Unmarshal(data, &one); err == nil && one.GeneratedText != "" {
		return one.GeneratedText
	}
	return string(data)
}

// extractJSON defensively pulls a JSON object out of potentially noisy
// generated text.
func extractJSON(text string) ([]byte, bool) {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		candidate := []byte(text[start : end+1])
		if json.Valid(candidate) {
			return candidate, true
		}
	}
	if json.Valid([]byte(text)) {
		return []byte(text), true
	}
	return nil, false
}

type groomPayload struct {
	GroomedTasks    []GroomedTask `json:"groomed_tasks"`
	Suggestions     []string      `json:"suggestions"`
	RemovedItems    []string      `json:"removed_items"`
	ProcessingNotes string        `json:"processing_notes"`
}

func (p groomPayload) toResult() *Result {
	var tasks []GroomedTask
	for _, t := range p.GroomedTasks {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			continue
		}
		if t.Priority == "" {
			t.Priority = "medium"
		}
		tasks = append(tasks, t)
	}
	return &Result{
		Tasks:           tasks,
		Suggestions:     p.Suggestions,
		RemovedItems:    p.RemovedItems,
		ProcessingNotes: p.ProcessingNotes,
	}
}

var listItemPrefix = regexp.MustCompile(`^(\d+\.|[-*])\s*`)

// resultFromLines salvages numbered or bulleted items from generated text
// that could not be parsed as JSON. Returns nil when no items are found.
func resultFromLines(text string) *Result {
	var tasks []GroomedTask
	for _, line := range nonEmptyLines(text) {
		if !listItemPrefix.MatchString(line) {
			continue
		}
		title := strings.TrimSpace(listItemPrefix.ReplaceAllString(line, ""))
		if title == "" {
			continue
		}
		tasks = append(tasks, GroomedTask{
			Title:    title,
			Priority: "medium",
			Notes:    "AI-processed",
			Source:   "AI response parsing",
		})
	}
	if len(tasks) == 0 {
		return nil
	}
	return &Result{
		Tasks:           tasks,
		ProcessingNotes: "AI response parsed without structured JSON",
		FallbackUsed:    true,
	}
}

var leadingNumber = regexp.MustCompile(`^\d+\.?\s*`)

// basicGroom is the local groomer: it deduplicates case-insensitively,
// strips stale numbering, and reports what it changed.
func basicGroom(list string) *Result {
	lines := nonEmptyLines(list)

	seen := make(map[string]bool)
	var unique []string
	for _, line := range lines {
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, line)
	}

	var tasks []GroomedTask
	for _, line := range unique {
		title := strings.TrimSpace(leadingNumber.ReplaceAllString(line, ""))
		if title == "" {
			continue
		}
		tasks = append(tasks, GroomedTask{
			Title:    title,
			Priority: "medium",
			Source:   "original input",
		})
	}

	notes := fmt.Sprintf("Basic grooming: %d tasks", len(tasks))
	if removed := len(lines) - len(unique); removed > 0 {
		notes += fmt.Sprintf(", removed %d duplicates", removed)
	}

	return &Result{
		Tasks:           tasks,
		ProcessingNotes: notes,
		FallbackUsed:    true,
		Suggestions:     []string{"Consider using AI grooming for better task optimization"},
	}
}
