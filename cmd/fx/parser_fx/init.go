package parser_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"carwise/pkg/utils"
)

var Module = fx.Provide(ProvideNumberParser)

// ParserConfig holds configuration for the remote numeral fallback client.
type ParserConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideNumberParser creates the remote numeral fallback based on
// environment variables. A missing key never aborts startup: the fallback
// fails closed to a disabled parser and the conversation treats unparseable
// text as "don't know".
func ProvideNumberParser() utils.NumberParserInterface {
	config := getParserConfig()

	switch strings.ToLower(config.Provider) {
	case "openai":
		if config.APIKey == "" {
			log.Println("OPENAI_API_KEY not set, remote numeral fallback disabled")
			return utils.NewDisabledNumberParser()
		}
		log.Printf("Initializing openai numeral parser with model: %s", config.Model)
		return utils.NewOpenAINumberParser(config.APIKey, config.Model)
	case "gemini":
		if config.APIKey == "" {
			log.Println("GEMINI_API_KEY not set, remote numeral fallback disabled")
			return utils.NewDisabledNumberParser()
		}
		log.Printf("Initializing gemini numeral parser with model: %s", config.Model)
		parser, err := utils.NewGeminiNumberParser(config.APIKey, config.Model)
		if err != nil {
			log.Printf("Failed to create Gemini parser, remote numeral fallback disabled: %v", err)
			return utils.NewDisabledNumberParser()
		}
		return parser
	default:
		log.Printf("No remote numeral parser configured (PARSER_PROVIDER=%q)", config.Provider)
		return utils.NewDisabledNumberParser()
	}
}

func getParserConfig() ParserConfig {
	provider := getEnvWithDefault("PARSER_PROVIDER", "none")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return ParserConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
