package response_models

import (
	"math"

	"carwise/internal/models/domain_models"
)

type ModeCostResponse struct {
	MonthlyCost      float64 `json:"monthlyCost"`
	YearlyCost       float64 `json:"yearlyCost"`
	TimeSpent        float64 `json:"timeSpent"`
	TimeCost         float64 `json:"timeCost"`
	TotalMonthlyCost float64 `json:"totalMonthlyCost"`
}

type CarBreakdownResponse struct {
	Depreciation float64 `json:"depreciation"`
	Fuel         float64 `json:"fuel"`
	Insurance    float64 `json:"insurance"`
	Tax          float64 `json:"tax"`
	Parking      float64 `json:"parking"`
	Toll         float64 `json:"toll"`
	Maintenance  float64 `json:"maintenance"`
}

type CarCostResponse struct {
	ModeCostResponse
	Breakdown CarBreakdownResponse `json:"breakdown"`
}

// CalculationResponse mirrors the domain result with JSON-safe fields:
// an unreachable break-even (+Inf internally) is serialized as null.
type CalculationResponse struct {
	PublicTransport ModeCostResponse `json:"publicTransport"`
	Car             CarCostResponse  `json:"car"`
	BreakEvenMonths *float64         `json:"breakEvenMonths"`
	Recommendation  string           `json:"recommendation"`
}

func NewCalculationResponse(result *domain_models.CalculationResult) *CalculationResponse {
	var breakEven *float64
	if !math.IsInf(result.BreakEvenMonths, 1) {
		v := result.BreakEvenMonths
		breakEven = &v
	}
	return &CalculationResponse{
		PublicTransport: newModeCostResponse(result.PublicTransport),
		Car: CarCostResponse{
			ModeCostResponse: newModeCostResponse(result.Car.ModeCost),
			Breakdown: CarBreakdownResponse{
				Depreciation: result.Car.Breakdown.Depreciation,
				Fuel:         result.Car.Breakdown.Fuel,
				Insurance:    result.Car.Breakdown.Insurance,
				Tax:          result.Car.Breakdown.Tax,
				Parking:      result.Car.Breakdown.Parking,
				Toll:         result.Car.Breakdown.Toll,
				Maintenance:  result.Car.Breakdown.Maintenance,
			},
		},
		BreakEvenMonths: breakEven,
		Recommendation:  string(result.Recommendation),
	}
}

func newModeCostResponse(cost domain_models.ModeCost) ModeCostResponse {
	return ModeCostResponse{
		MonthlyCost:      cost.MonthlyCost,
		YearlyCost:       cost.YearlyCost,
		TimeSpent:        cost.TimeSpent,
		TimeCost:         cost.TimeCost,
		TotalMonthlyCost: cost.TotalMonthlyCost,
	}
}
