package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"askbudget/budget-buddy/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// DefaultTemperature keeps classification answers stable across calls.
const DefaultTemperature = 0.2

// GeminiClient implements ClassificationService with the Google Gemini API.
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	limiter   *rate.Limiter
	logger    logging.Logger
}

// NewGeminiClient connects to Gemini. requestsPerMinute bounds the call rate;
// zero or less disables the limiter.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, requestsPerMinute int, logger logging.Logger) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(DefaultTemperature)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
	}

	return &GeminiClient{
		client:    client,
		model:     model,
		modelName: modelName,
		limiter:   limiter,
		logger:    logger,
	}, nil
}

// Classify implements ClassificationService.
func (c *GeminiClient) Classify(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini: rate limiter: %w", err)
	}

	c.logger.Debug("Sending classification request",
		logging.Field{Key: logging.FieldModel, Value: c.modelName})

	resp, err := c.model.GenerateContent(ctx, genai.Text(SystemInstruction+"\n\n"+prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return responseText(resp)
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", fmt.Errorf("gemini: candidate has no content")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("gemini: response has no text")
	}
	return b.String(), nil
}
