package chat_fx

import (
	"time"

	"go.uber.org/fx"

	"carwise/internal/api/controllers"
	"carwise/internal/repositories"
	"carwise/internal/services"
	"carwise/pkg/utils"
)

const sessionTTL = 2 * time.Hour

var Module = fx.Provide(
	ProvideSessionRepository,
	ProvideNormalizerService,
	ProvideValidatorService,
	ProvideConversationService,
	ProvideChatController,
)

func ProvideSessionRepository() repositories.SessionRepository {
	return repositories.NewInMemorySessionRepository(sessionTTL)
}

func ProvideNormalizerService() services.NormalizerServiceInterface {
	return services.NewNormalizerService()
}

// ProvideValidatorService fails startup when the question catalog is
// incomplete.
func ProvideValidatorService() (services.ValidatorServiceInterface, error) {
	return services.NewValidatorService()
}

func ProvideConversationService(
	sessions repositories.SessionRepository,
	normalizer services.NormalizerServiceInterface,
	validator services.ValidatorServiceInterface,
	calculator services.CalculatorServiceInterface,
	parser utils.NumberParserInterface,
) services.ConversationServiceInterface {
	return services.NewConversationService(sessions, normalizer, validator, calculator, parser)
}

func ProvideChatController(
	conversationService services.ConversationServiceInterface,
) *controllers.ChatController {
	return controllers.NewChatController(conversationService)
}
