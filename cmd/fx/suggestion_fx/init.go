package suggestion_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"roteiro/internal/repositories"
	"roteiro/internal/services"
	mem "roteiro/pkg/memcache"
	"roteiro/pkg/utils"
)

var Module = fx.Provide(
	ProvideSuggestionClient,
	ProvideSuggestionService)

// SuggestionConfig holds configuration for suggestion clients
type SuggestionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideSuggestionClient creates a suggestion client based on environment
// variables. A missing API key is not fatal: the service runs with a nil
// client and the suggestion endpoints report unavailability instead.
func ProvideSuggestionClient() utils.SuggestionClientInterface {
	config := getSuggestionConfig()

	if config.APIKey == "" {
		log.Printf("No API key for suggestion provider %s, suggestions disabled", config.Provider)
		return nil
	}

	log.Printf("Initializing %s suggestion client with model: %s", config.Provider, config.Model)

	client, err := utils.NewSuggestionClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		log.Printf("Failed to create suggestion client: %v, suggestions disabled", err)
		return nil
	}
	return client
}

func ProvideSuggestionService(
	lodgings repositories.LodgingRepository,
	cache repositories.SuggestionCacheRepository,
	client utils.SuggestionClientInterface,
	inflight mem.InFlightStore,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(lodgings, cache, client, inflight)
}

// getSuggestionConfig reads configuration from environment variables
func getSuggestionConfig() SuggestionConfig {
	provider := getEnvWithDefault("SUGGESTION_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return SuggestionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
