package services

import (
	"math"

	"carwise/internal/models/domain_models"
)

// Monthly totals within this window are treated as "similar" rather than
// recommending one mode over the other.
const similarCostThreshold = 50_000

type CalculatorServiceInterface interface {
	ComputeCosts(
		commute domain_models.CommuteInfo,
		car domain_models.CarCosts,
		timeValue domain_models.TimeValue,
	) domain_models.CalculationResult
}

type CalculatorService struct{}

func NewCalculatorService() CalculatorServiceInterface {
	return &CalculatorService{}
}

// ComputeCosts is a pure function: same inputs always produce the same
// result, and degenerate inputs (zero work days, zero wage, zero
// depreciation horizon) degrade to zero contributions instead of NaN.
func (s *CalculatorService) ComputeCosts(
	commute domain_models.CommuteInfo,
	car domain_models.CarCosts,
	timeValue domain_models.TimeValue,
) domain_models.CalculationResult {

	roundTrips := 2 * commute.WorkDaysPerMonth

	ptMonthlyCost := commute.PublicTransportCost * roundTrips
	ptTimeSpent := commute.PublicTransportTime * roundTrips / 60
	ptTimeCost := ptTimeSpent * timeValue.HourlyWage

	publicTransport := domain_models.ModeCost{
		MonthlyCost:      ptMonthlyCost,
		YearlyCost:       ptMonthlyCost * 12,
		TimeSpent:        ptTimeSpent,
		TimeCost:         ptTimeCost,
		TotalMonthlyCost: ptMonthlyCost + ptTimeCost,
	}

	monthlyDistance := commute.Distance * roundTrips
	fuelCost := 0.0
	if car.FuelEfficiency > 0 {
		fuelCost = monthlyDistance / car.FuelEfficiency * car.FuelPrice
	}
	tollCost := car.TollFee * roundTrips
	depreciationMonthly := 0.0
	if car.DepreciationYears > 0 {
		depreciationMonthly = car.PurchasePrice / (car.DepreciationYears * 12)
	}
	insuranceMonthly := car.Insurance / 12
	taxMonthly := car.Tax / 12
	maintenanceMonthly := car.MaintenanceFee / 12

	carMonthlyCost := depreciationMonthly + fuelCost + insuranceMonthly +
		taxMonthly + car.ParkingFee + tollCost + maintenanceMonthly
	carTimeSpent := commute.CarTime * roundTrips / 60
	carTimeCost := carTimeSpent * timeValue.HourlyWage
	carTotal := carMonthlyCost + carTimeCost

	carCost := domain_models.CarModeCost{
		ModeCost: domain_models.ModeCost{
			MonthlyCost:      carMonthlyCost,
			YearlyCost:       carMonthlyCost * 12,
			TimeSpent:        carTimeSpent,
			TimeCost:         carTimeCost,
			TotalMonthlyCost: carTotal,
		},
		Breakdown: domain_models.CarCostBreakdown{
			Depreciation: depreciationMonthly,
			Fuel:         fuelCost,
			Insurance:    insuranceMonthly,
			Tax:          taxMonthly,
			Parking:      car.ParkingFee,
			Toll:         tollCost,
			Maintenance:  maintenanceMonthly,
		},
	}

	// Break-even: months until the cumulative savings of driving (vs. riding
	// transit) cover the purchase price. Depreciation is left out of the
	// savings since it is the amortized form of the very investment being
	// recovered, not an ongoing drain.
	var breakEvenMonths float64
	switch {
	case car.PurchasePrice == 0:
		breakEvenMonths = 0
	case carTotal < publicTransport.TotalMonthlyCost:
		operating := carMonthlyCost - depreciationMonthly + carTimeCost
		monthlySavings := publicTransport.TotalMonthlyCost - operating
		if monthlySavings > 0 {
			breakEvenMonths = car.PurchasePrice / monthlySavings
		} else {
			breakEvenMonths = math.Inf(1)
		}
	default:
		breakEvenMonths = math.Inf(1)
	}

	recommendation := domain_models.RecommendationSimilar
	difference := math.Abs(carTotal - publicTransport.TotalMonthlyCost)
	if difference >= similarCostThreshold {
		if carTotal < publicTransport.TotalMonthlyCost {
			recommendation = domain_models.RecommendationCar
		} else {
			recommendation = domain_models.RecommendationPublicTransport
		}
	}

	return domain_models.CalculationResult{
		PublicTransport: publicTransport,
		Car:             carCost,
		BreakEvenMonths: breakEvenMonths,
		Recommendation:  recommendation,
	}
}
