package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// NumberParserInterface is the remote numeral fallback: an LLM that extracts
// the final KRW amount from free text the local normalizer could not parse.
// A nil value means "unknown". Implementations must return within a bounded
// time; any failure degrades to (nil, err) and never blocks the conversation.
type NumberParserInterface interface {
	ParseNumber(ctx context.Context, text string, questionType string) (*float64, error)
}

const parserTimeout = 10 * time.Second

// parserSystemPrompt encodes the same unit conventions the local normalizer
// uses, so the remote value needs no further conversion by the caller.
const parserSystemPrompt = `You are a Korean number parser for a commute cost calculator. Extract the final numeric value in KRW (원).

IMPORTANT: The value you return must be the FINAL amount in 원 (KRW). Do all unit conversions yourself.

Korean number words: 일=1, 이=2, 삼=3, 사=4, 오=5, 육=6, 칠=7, 팔=8, 구=9, 십=10, 백=100, 천=1000, 만=10000, 억=100000000.
Example: "이천오백만원" = 2500 * 10000 = 25,000,000

Question type contexts and their expected units:
- carPrice, currentCarValue: 원 (car prices typically 1,000만~10,000만원). "2천5백" = 2500만원 = 25,000,000원
- insurance, tax, maintenance: 원 (yearly, typically 50만~300만원). "180" = 180만원 = 1,800,000원
- monthlyCarLoan, parking: 원 (monthly, typically 0~200만원). "25" = 25만원 = 250,000원
- hourlyWage: 원 (typically 1만~10만원)
- fuelPrice: 원/L (typically 1,500~2,000원). Return as-is.
- toll, publicTransportCost: 원 (per trip). Return as-is.
- distance: km. Return as-is.
- workDays: days. Return as-is.
- publicTransportTime, carTime: minutes. Return as-is.
- depreciation, remainingLoanMonths: number. Return as-is.

Key rule: When Korean units like 천/백 are used WITHOUT 만/원 for price-related questions, the user means 만원 units.

Special values:
- "없음/없어" means 0
- "모름/몰라" means null
- Car model names (e.g. "셀토스", "그랜저", "아반떼") mean -1

Return ONLY: {"value": <number or null>}
No explanation, no markdown.`

type parsedValue struct {
	Value *float64 `json:"value"`
}

// decodeParserResponse tolerates markdown fences some models wrap around
// their JSON despite instructions.
func decodeParserResponse(content string) (*float64, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var parsed parsedValue
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("malformed parser response: %w", err)
	}
	return parsed.Value, nil
}

// OpenAINumberParser implements NumberParserInterface with an OpenAI-style
// chat completion endpoint.
type OpenAINumberParser struct {
	client *openai.Client
	model  string
}

func NewOpenAINumberParser(apiKey, model string) *OpenAINumberParser {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAINumberParser{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAINumberParser) ParseNumber(ctx context.Context, text string, questionType string) (*float64, error) {
	ctx, cancel := context.WithTimeout(ctx, parserTimeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: parserSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Input: %q\nQuestion type: %s", text, questionType)},
		},
		Temperature: 0,
		MaxTokens:   50,
	})
	if err != nil {
		return nil, fmt.Errorf("openai parser: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai parser: empty response")
	}
	return decodeParserResponse(resp.Choices[0].Message.Content)
}

// DisabledNumberParser is used when no provider is configured. It reports
// every input as unknown, which the conversation treats like an explicit
// "모름" answer.
type DisabledNumberParser struct{}

func NewDisabledNumberParser() *DisabledNumberParser {
	return &DisabledNumberParser{}
}

func (p *DisabledNumberParser) ParseNumber(ctx context.Context, text string, questionType string) (*float64, error) {
	return nil, nil
}
