package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carwise/internal/models/request_models"
	"carwise/internal/models/response_models"
	"carwise/internal/services"
	"carwise/pkg/utils"
)

type CalculatorController struct {
	calculatorService services.CalculatorServiceInterface
}

func NewCalculatorController(calculatorService services.CalculatorServiceInterface) *CalculatorController {
	return &CalculatorController{
		calculatorService: calculatorService,
	}
}

// CalculateHandler runs the cost engine directly, without a conversation.
func (ctl *CalculatorController) CalculateHandler(c *gin.Context) {
	var req request_models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	commute, car, timeValue := req.ToDomain()
	result := ctl.calculatorService.ComputeCosts(commute, car, timeValue)

	utils.RespondSuccess(c, response_models.NewCalculationResponse(&result), "Costs calculated")
}
