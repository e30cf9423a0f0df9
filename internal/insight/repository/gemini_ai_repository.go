package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-stock-insight/internal/insight/config"
	"golang-stock-insight/internal/scoring"
	"golang-stock-insight/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// AIRepository generates an optional narrative commentary for one scoring
// run. The commentary is decoration attached to a snapshot; it never feeds
// back into the deterministic composite score.
type AIRepository interface {
	GenerateCommentary(ctx context.Context, symbol string, result scoring.Result) (string, error)
}

type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a rate-limited Gemini commentary client.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (AIRepository, error) {
	if cfg.Gemini.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("gemini.max_request_per_minute must be positive")
	}
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		genAiClient:    genAiClient,
	}, nil
}

// GenerateCommentary asks the model to narrate the already-computed score and
// explanations in two or three sentences.
func (r *geminiAIRepository) GenerateCommentary(ctx context.Context, symbol string, result scoring.Result) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := buildCommentaryPrompt(symbol, result)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate commentary: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty commentary response")
	}

	r.logger.Debug("Generated commentary",
		logger.StringField("symbol", symbol),
		logger.IntField("length", len(text)))
	return text, nil
}

func buildCommentaryPrompt(symbol string, result scoring.Result) string {
	var sb strings.Builder
	sb.WriteString("You are a cautious markets writer. Summarize the following rule-based technical reading ")
	sb.WriteString("in two or three plain sentences. Do not change the recommendation, do not add price targets, ")
	sb.WriteString("and mention that this is not investment advice.\n\n")
	sb.WriteString(fmt.Sprintf("Symbol: %s\n", symbol))
	sb.WriteString(fmt.Sprintf("Composite score: %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", result.Label))
	sb.WriteString("Signals:\n")
	for _, e := range result.Explanations {
		sb.WriteString("- " + e + "\n")
	}
	return sb.String()
}
