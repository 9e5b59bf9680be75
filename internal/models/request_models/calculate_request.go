package request_models

import "carwise/internal/models/domain_models"

// CalculateRequest is the direct (non-chat) entry to the cost engine, for
// callers that already have every number.
type CalculateRequest struct {
	Commute   CommuteRequest   `json:"commute" binding:"required"`
	Car       CarRequest       `json:"car" binding:"required"`
	TimeValue TimeValueRequest `json:"timeValue" binding:"required"`
}

type CommuteRequest struct {
	Distance            float64 `json:"distance" binding:"required,gt=0"`
	WorkDaysPerMonth    float64 `json:"workDaysPerMonth" binding:"gte=0,lte=31"`
	PublicTransportCost float64 `json:"publicTransportCost" binding:"gte=0"`
	PublicTransportTime float64 `json:"publicTransportTime" binding:"gte=0"`
	CarTime             float64 `json:"carTime" binding:"gte=0"`
}

type CarRequest struct {
	PurchasePrice     float64 `json:"purchasePrice" binding:"gte=0"`
	FuelEfficiency    float64 `json:"fuelEfficiency" binding:"required,gt=0"`
	FuelPrice         float64 `json:"fuelPrice" binding:"gte=0"`
	Insurance         float64 `json:"insurance" binding:"gte=0"`
	Tax               float64 `json:"tax" binding:"gte=0"`
	ParkingFee        float64 `json:"parkingFee" binding:"gte=0"`
	TollFee           float64 `json:"tollFee" binding:"gte=0"`
	MaintenanceFee    float64 `json:"maintenanceFee" binding:"gte=0"`
	DepreciationYears float64 `json:"depreciationYears" binding:"gte=0"`
	CurrentCarValue   float64 `json:"currentCarValue" binding:"gte=0"`
}

type TimeValueRequest struct {
	HourlyWage float64 `json:"hourlyWage" binding:"gte=0"`
}

func (r *CalculateRequest) ToDomain() (domain_models.CommuteInfo, domain_models.CarCosts, domain_models.TimeValue) {
	commute := domain_models.CommuteInfo{
		Distance:            r.Commute.Distance,
		WorkDaysPerMonth:    r.Commute.WorkDaysPerMonth,
		PublicTransportCost: r.Commute.PublicTransportCost,
		PublicTransportTime: r.Commute.PublicTransportTime,
		CarTime:             r.Commute.CarTime,
	}
	car := domain_models.CarCosts{
		PurchasePrice:     r.Car.PurchasePrice,
		FuelEfficiency:    r.Car.FuelEfficiency,
		FuelPrice:         r.Car.FuelPrice,
		Insurance:         r.Car.Insurance,
		Tax:               r.Car.Tax,
		ParkingFee:        r.Car.ParkingFee,
		TollFee:           r.Car.TollFee,
		MaintenanceFee:    r.Car.MaintenanceFee,
		DepreciationYears: r.Car.DepreciationYears,
		CurrentCarValue:   r.Car.CurrentCarValue,
	}
	timeValue := domain_models.TimeValue{HourlyWage: r.TimeValue.HourlyWage}
	return commute, car, timeValue
}
