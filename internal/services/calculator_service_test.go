package services

import (
	"math"
	"reflect"
	"testing"

	"carwise/internal/models/domain_models"
)

func scenarioInputs() (domain_models.CommuteInfo, domain_models.CarCosts, domain_models.TimeValue) {
	commute := domain_models.CommuteInfo{
		Distance:            50,
		WorkDaysPerMonth:    22,
		PublicTransportCost: 3200,
		PublicTransportTime: 90,
		CarTime:             60,
	}
	car := domain_models.CarCosts{
		PurchasePrice:     30_000_000,
		FuelEfficiency:    12,
		FuelPrice:         1600,
		Insurance:         1_200_000,
		Tax:               400_000,
		ParkingFee:        100_000,
		TollFee:           3000,
		MaintenanceFee:    800_000,
		DepreciationYears: 5,
	}
	timeValue := domain_models.TimeValue{HourlyWage: 20_000}
	return commute, car, timeValue
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestComputeCosts_TypicalCommute(t *testing.T) {
	service := NewCalculatorService()
	commute, car, timeValue := scenarioInputs()

	result := service.ComputeCosts(commute, car, timeValue)

	if result.PublicTransport.MonthlyCost != 140_800 {
		t.Errorf("expected transit monthly cost 140800, got %.2f", result.PublicTransport.MonthlyCost)
	}
	if result.PublicTransport.TimeSpent != 66 {
		t.Errorf("expected 66 transit hours, got %.2f", result.PublicTransport.TimeSpent)
	}
	if result.PublicTransport.TimeCost != 1_320_000 {
		t.Errorf("expected transit time cost 1320000, got %.2f", result.PublicTransport.TimeCost)
	}
	if result.PublicTransport.TotalMonthlyCost != 1_460_800 {
		t.Errorf("expected transit total 1460800, got %.2f", result.PublicTransport.TotalMonthlyCost)
	}
	if result.Car.Breakdown.Depreciation != 500_000 {
		t.Errorf("expected depreciation 500000, got %.2f", result.Car.Breakdown.Depreciation)
	}
	if !almostEqual(result.Car.Breakdown.Fuel, 293_333.33) {
		t.Errorf("expected fuel cost ~293333.33, got %.2f", result.Car.Breakdown.Fuel)
	}
	if !math.IsInf(result.BreakEvenMonths, 1) {
		t.Errorf("expected unreachable break-even, got %.2f", result.BreakEvenMonths)
	}
	if result.Recommendation != domain_models.RecommendationPublicTransport {
		t.Errorf("expected publicTransport recommendation, got %s", result.Recommendation)
	}
}

func TestComputeCosts_LongerDepreciationHorizon(t *testing.T) {
	service := NewCalculatorService()
	commute, car, timeValue := scenarioInputs()
	car.DepreciationYears = 10

	result := service.ComputeCosts(commute, car, timeValue)

	if result.Car.Breakdown.Depreciation != 250_000 {
		t.Errorf("expected depreciation 250000, got %.2f", result.Car.Breakdown.Depreciation)
	}
}

func TestComputeCosts_ZeroPurchasePrice(t *testing.T) {
	service := NewCalculatorService()
	commute, car, timeValue := scenarioInputs()
	car.PurchasePrice = 0

	result := service.ComputeCosts(commute, car, timeValue)

	if result.BreakEvenMonths != 0 {
		t.Errorf("expected break-even 0 for owned car, got %.2f", result.BreakEvenMonths)
	}
}

func TestComputeCosts_ZeroWorkDays(t *testing.T) {
	service := NewCalculatorService()
	commute, car, timeValue := scenarioInputs()
	commute.WorkDaysPerMonth = 0

	result := service.ComputeCosts(commute, car, timeValue)

	if result.PublicTransport.MonthlyCost != 0 {
		t.Errorf("expected zero transit cost, got %.2f", result.PublicTransport.MonthlyCost)
	}
	if result.Car.Breakdown.Fuel != 0 {
		t.Errorf("expected zero fuel cost, got %.2f", result.Car.Breakdown.Fuel)
	}
	if result.Car.Breakdown.Toll != 0 {
		t.Errorf("expected zero toll cost, got %.2f", result.Car.Breakdown.Toll)
	}
}

func TestComputeCosts_ZeroHourlyWage(t *testing.T) {
	service := NewCalculatorService()
	commute, car, timeValue := scenarioInputs()
	timeValue.HourlyWage = 0

	result := service.ComputeCosts(commute, car, timeValue)

	if result.PublicTransport.TimeCost != 0 {
		t.Errorf("expected zero transit time cost, got %.2f", result.PublicTransport.TimeCost)
	}
	if result.Car.TimeCost != 0 {
		t.Errorf("expected zero car time cost, got %.2f", result.Car.TimeCost)
	}
}

func TestComputeCosts_ZeroDepreciationYears(t *testing.T) {
	service := NewCalculatorService()
	commute, car, timeValue := scenarioInputs()
	car.DepreciationYears = 0

	result := service.ComputeCosts(commute, car, timeValue)

	if result.Car.Breakdown.Depreciation != 0 {
		t.Errorf("expected zero depreciation for zero horizon, got %.2f", result.Car.Breakdown.Depreciation)
	}
	if math.IsNaN(result.Car.TotalMonthlyCost) {
		t.Errorf("car total must not be NaN")
	}
}

// The "similar" band uses a strict < 50,000 comparison: a difference of
// exactly 50,000 picks a side.
func TestComputeCosts_SimilarThresholdBoundary(t *testing.T) {
	service := NewCalculatorService()

	commute := domain_models.CommuteInfo{Distance: 10, WorkDaysPerMonth: 0}
	timeValue := domain_models.TimeValue{HourlyWage: 0}

	// Only the yearly insurance contributes: 600,000/12 = 50,000/month.
	car := domain_models.CarCosts{Insurance: 600_000, FuelEfficiency: 12}
	result := service.ComputeCosts(commute, car, timeValue)
	if result.Recommendation != domain_models.RecommendationPublicTransport {
		t.Errorf("difference of exactly 50000 must not be similar, got %s", result.Recommendation)
	}

	// 599,988/12 = 49,999/month: inside the band.
	car.Insurance = 599_988
	result = service.ComputeCosts(commute, car, timeValue)
	if result.Recommendation != domain_models.RecommendationSimilar {
		t.Errorf("difference of 49999 should be similar, got %s", result.Recommendation)
	}
}

func TestComputeCosts_Deterministic(t *testing.T) {
	service := NewCalculatorService()
	commute, car, timeValue := scenarioInputs()

	first := service.ComputeCosts(commute, car, timeValue)
	second := service.ComputeCosts(commute, car, timeValue)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("ComputeCosts must be pure: identical inputs produced different results")
	}
}
