package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"minibank/statement-analyzer/internal/logging"
)

// GeminiClassifier classifies transaction descriptions with the Google
// Gemini API. It is one of two Classifier implementations; the other is
// RemoteClassifier for a self-hosted classification service.
type GeminiClassifier struct {
	client     *genai.Client
	model      *genai.GenerativeModel
	categories []string
	logger     logging.Logger
}

// NewGeminiClassifier creates a Gemini-backed classifier constrained to the
// given category vocabulary.
func NewGeminiClassifier(ctx context.Context, apiKey, modelName string, categories []string, logger logging.Logger) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini classifier requires an API key")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClassifier{
		client:     client,
		model:      client.GenerativeModel(modelName),
		categories: categories,
		logger:     logger,
	}, nil
}

// Classify asks the model for exactly one category from the vocabulary.
func (g *GeminiClassifier) Classify(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(`Categorize the following bank transaction description:
%s

Assign it to exactly one of the following categories:
%s

Respond with only the category name, nothing else.`,
		description,
		strings.Join(g.categories, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini API")
	}

	answer := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))

	// Only accept answers from the known vocabulary; the model occasionally
	// returns prose despite the prompt.
	for _, category := range g.categories {
		if strings.EqualFold(answer, category) {
			return category, nil
		}
	}
	for _, category := range g.categories {
		if strings.Contains(strings.ToLower(answer), strings.ToLower(category)) {
			g.logger.WithField(logging.FieldCategory, category).
				Debug("extracted category from verbose model answer")
			return category, nil
		}
	}

	return "", fmt.Errorf("gemini answer %q matched no known category", answer)
}

// Close releases the underlying API client.
func (g *GeminiClassifier) Close() error {
	return g.client.Close()
}
