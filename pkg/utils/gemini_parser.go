package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiNumberParser implements NumberParserInterface using Google's Gemini
// models (free tier friendly alternative to the OpenAI parser).
type GeminiNumberParser struct {
	client *genai.Client
	model  string
}

func NewGeminiNumberParser(apiKey, model string) (*GeminiNumberParser, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiNumberParser{client: client, model: model}, nil
}

func (p *GeminiNumberParser) ParseNumber(ctx context.Context, text string, questionType string) (*float64, error) {
	ctx, cancel := context.WithTimeout(ctx, parserTimeout)
	defer cancel()

	m := p.client.GenerativeModel(p.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0)

	prompt := fmt.Sprintf("%s\n\nInput: %q\nQuestion type: %s", parserSystemPrompt, text, questionType)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini parser: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini parser: no content")
	}
	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return decodeParserResponse(content)
}
