package domain_models

// CommuteInfo holds the shared commute parameters collected during the chat.
// All durations are one-way minutes, distance is one-way km.
type CommuteInfo struct {
	Distance            float64
	WorkDaysPerMonth    float64
	PublicTransportCost float64
	PublicTransportTime float64
	CarTime             float64
}

// CarCosts holds every cost component of owning the candidate car.
// Insurance, tax and maintenance are yearly amounts, parking is monthly,
// toll is per one-way trip.
type CarCosts struct {
	PurchasePrice     float64
	FuelEfficiency    float64 // km/L
	FuelPrice         float64 // per liter
	Insurance         float64
	Tax               float64
	ParkingFee        float64
	TollFee           float64
	MaintenanceFee    float64
	DepreciationYears float64
	CurrentCarValue   float64 // trade-in value of an already owned car, 0 if none
}

// TimeValue is the hourly opportunity cost the user assigns to commute time.
type TimeValue struct {
	HourlyWage float64
}
