package services

import (
	"fmt"

	"carwise/internal/models/domain_models"
)

type ValidatorServiceInterface interface {
	// Validate checks a normalized value against the question's plausibility
	// window. A violation comes back as *RangeError with a user-facing reason;
	// it is a re-prompt, not a failure.
	Validate(value float64, question domain_models.QuestionType) error
}

// RangeError carries the re-prompt message for an out-of-range answer,
// phrased in the units the question was asked in.
type RangeError struct {
	Question domain_models.QuestionType
	Value    float64
	Reason   string
}

func (e *RangeError) Error() string {
	return e.Reason
}

type ValidatorService struct{}

// NewValidatorService builds the validator after asserting the question
// catalog covers every numeric step.
func NewValidatorService() (ValidatorServiceInterface, error) {
	if err := ValidateCatalog(); err != nil {
		return nil, err
	}
	return &ValidatorService{}, nil
}

func (v *ValidatorService) Validate(value float64, question domain_models.QuestionType) error {
	spec, ok := catalogEntry(question)
	if !ok {
		return fmt.Errorf("no range configured for question %q", question)
	}
	if value < spec.Min || value > spec.Max {
		div := spec.DisplayDiv
		return &RangeError{
			Question: question,
			Value:    value,
			Reason: fmt.Sprintf("%s~%s%s 사이의 값으로 다시 입력해주세요. (입력하신 값: %s%s)",
				formatNumber(spec.Min/div), formatNumber(spec.Max/div), spec.Unit,
				formatNumber(value/div), spec.Unit),
		}
	}
	return nil
}
