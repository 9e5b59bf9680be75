package calculator_fx

import (
	"go.uber.org/fx"

	"carwise/internal/api/controllers"
	"carwise/internal/services"
)

var Module = fx.Provide(
	ProvideCalculatorService,
	ProvideCalculatorController,
)

func ProvideCalculatorService() services.CalculatorServiceInterface {
	return services.NewCalculatorService()
}

func ProvideCalculatorController(
	calculatorService services.CalculatorServiceInterface,
) *controllers.CalculatorController {
	return controllers.NewCalculatorController(calculatorService)
}
