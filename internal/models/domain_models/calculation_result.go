package domain_models

type Recommendation string

const (
	RecommendationCar             Recommendation = "car"
	RecommendationPublicTransport Recommendation = "publicTransport"
	RecommendationSimilar         Recommendation = "similar"
)

// ModeCost is the monthly cost profile of one commute mode.
// TimeSpent is hours per month, TimeCost is that time priced at the hourly wage.
type ModeCost struct {
	MonthlyCost      float64
	YearlyCost       float64
	TimeSpent        float64
	TimeCost         float64
	TotalMonthlyCost float64
}

// CarCostBreakdown itemizes the car's monthly cost.
type CarCostBreakdown struct {
	Depreciation float64
	Fuel         float64
	Insurance    float64
	Tax          float64
	Parking      float64
	Toll         float64
	Maintenance  float64
}

type CarModeCost struct {
	ModeCost
	Breakdown CarCostBreakdown
}

// CalculationResult is the full comparison. BreakEvenMonths is +Inf when car
// ownership never recovers the purchase price, 0 when there is nothing to recover.
type CalculationResult struct {
	PublicTransport ModeCost
	Car             CarModeCost
	BreakEvenMonths float64
	Recommendation  Recommendation
}
