package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const starsPrompt = `Rate the sentiment of the following financial news text for the stock's investors
on a scale of 1 (very negative) to 5 (very positive). Reply with JSON only: {"stars": <1-5>}.

Text:
`

// GeminiClassifier asks a Gemini model for a star rating.
type GeminiClassifier struct {
	model    string
	generate func(ctx context.Context, prompt string) (string, error)
}

// NewGeminiClassifier creates a classifier backed by the Gemini API.
func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"stars": {Type: genai.TypeInteger, Description: "sentiment from 1 to 5"},
			},
			Required: []string{"stars"},
		},
	}

	return &GeminiClassifier{
		model: model,
		generate: func(ctx context.Context, prompt string) (string, error) {
			resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
			if err != nil {
				return "", err
			}
			return resp.Text(), nil
		},
	}, nil
}

// Name returns the provider's display name.
func (g *GeminiClassifier) Name() string { return "gemini:" + g.model }

// Stars sends the text to the model and parses its JSON rating.
func (g *GeminiClassifier) Stars(ctx context.Context, text string) (int, error) {
	out, err := g.generate(ctx, starsPrompt+text)
	if err != nil {
		return 0, fmt.Errorf("gemini: %w", err)
	}
	return parseStars(out)
}

func parseStars(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "```"), "```")

	var reply struct {
		Stars int `json:"stars"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &reply); err != nil {
		return 0, fmt.Errorf("gemini: decoding rating %q: %w", raw, err)
	}
	if reply.Stars < 1 || reply.Stars > 5 {
		return 0, fmt.Errorf("gemini: rating %d out of range", reply.Stars)
	}
	return reply.Stars, nil
}
