package domain_models

// QuestionType identifies one step of the chat flow. The zero-th steps
// (welcome, ownCar, hasLoan) are yes/no gates, the rest collect a number,
// and result is terminal.
type QuestionType string

const (
	StepWelcome             QuestionType = "welcome"
	StepDistance            QuestionType = "distance"
	StepWorkDays            QuestionType = "workDays"
	StepPublicTransportCost QuestionType = "publicTransportCost"
	StepPublicTransportTime QuestionType = "publicTransportTime"
	StepCarTime             QuestionType = "carTime"
	StepOwnCar              QuestionType = "ownCar"
	StepCurrentCarValue     QuestionType = "currentCarValue"
	StepHasLoan             QuestionType = "hasLoan"
	StepMonthlyCarLoan      QuestionType = "monthlyCarLoan"
	StepRemainingLoanMonths QuestionType = "remainingLoanMonths"
	StepCarPrice            QuestionType = "carPrice"
	StepFuelEfficiency      QuestionType = "fuelEfficiency"
	StepFuelPrice           QuestionType = "fuelPrice"
	StepInsurance           QuestionType = "insurance"
	StepTax                 QuestionType = "tax"
	StepParking             QuestionType = "parking"
	StepToll                QuestionType = "toll"
	StepMaintenance         QuestionType = "maintenance"
	StepDepreciation        QuestionType = "depreciation"
	StepHourlyWage          QuestionType = "hourlyWage"
	StepResult              QuestionType = "result"
)

// NumericSteps lists every step that expects a numeric answer, in flow order.
// The question catalog must have an entry for each of these.
var NumericSteps = []QuestionType{
	StepDistance,
	StepWorkDays,
	StepPublicTransportCost,
	StepPublicTransportTime,
	StepCarTime,
	StepCurrentCarValue,
	StepMonthlyCarLoan,
	StepRemainingLoanMonths,
	StepCarPrice,
	StepFuelEfficiency,
	StepFuelPrice,
	StepInsurance,
	StepTax,
	StepParking,
	StepToll,
	StepMaintenance,
	StepDepreciation,
	StepHourlyWage,
}

// YesNoSteps are gates answered with 예/아니오 instead of a number.
var YesNoSteps = map[QuestionType]bool{
	StepWelcome: true,
	StepOwnCar:  true,
	StepHasLoan: true,
}
