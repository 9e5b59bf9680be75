package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"carwise/internal/models/domain_models"
)

type NormalizerServiceInterface interface {
	// Normalize turns free-form Korean text into a canonical amount for the
	// given question. nil means the text carries no usable number ("don't
	// know" or unparseable); 0 is a real answer ("없음").
	Normalize(text string, question domain_models.QuestionType) *float64
}

type NormalizerService struct {
	now func() time.Time
}

func NewNormalizerService() NormalizerServiceInterface {
	return &NormalizerService{now: time.Now}
}

var unknownMarkers = []string{"모름", "몰라", "모르겠", "글쎄", "잘 모"}

var noneMarkers = []string{"없음", "없어", "없다", "없습니다", "안냄", "안 냄"}

// Base prices for common models, keyed by lowercase name. Used only for the
// carPrice question so "그랜저" or "21년식 셀토스" works as an answer.
var vehiclePrices = map[string]float64{
	"모닝":    13_500_000,
	"레이":    14_000_000,
	"캐스퍼":   14_500_000,
	"아반떼":   20_500_000,
	"k3":    20_000_000,
	"셀토스":   25_000_000,
	"투싼":    27_000_000,
	"쏘나타":   27_000_000,
	"k5":    27_500_000,
	"스포티지":  28_000_000,
	"쏘렌토":   35_000_000,
	"카니발":   35_000_000,
	"그랜저":   38_000_000,
	"k8":    38_000_000,
	"팰리세이드": 43_000_000,
}

// Questions whose bare small numbers are quoted in 만원 by convention
// ("180" for a yearly premium means 1,800,000).
var manWonQuestions = map[domain_models.QuestionType]bool{
	domain_models.StepInsurance:      true,
	domain_models.StepTax:            true,
	domain_models.StepMaintenance:    true,
	domain_models.StepParking:        true,
	domain_models.StepMonthlyCarLoan: true,
}

var (
	modelYearRe = regexp.MustCompile(`(\d{2,4})년식`)
	eokRe       = regexp.MustCompile(`(\d+(?:\.\d+)?)억`)
	cheonManRe  = regexp.MustCompile(`(\d+)천(?:(\d+)백)?만`)
	baekManRe   = regexp.MustCompile(`(\d+)백만`)
	manRe       = regexp.MustCompile(`(\d+(?:\.\d+)?)만`)
	cheonRe     = regexp.MustCompile(`(\d+)천(?:[^만]|$)`)
	digitsRe    = regexp.MustCompile(`\d+`)
)

// Sino-Korean digit words directly in front of a magnitude word are spelled
// out in casual answers ("이천오백만원"). Rewriting them to ASCII digits lets
// the unit patterns below handle both forms.
var sinoDigits = map[rune]rune{
	'일': '1', '이': '2', '삼': '3', '사': '4', '오': '5',
	'육': '6', '칠': '7', '팔': '8', '구': '9',
}

var magnitudeRunes = map[rune]bool{'십': true, '백': true, '천': true, '만': true, '억': true}

func transliterateSinoDigits(text string) string {
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if d, ok := sinoDigits[runes[i]]; ok && magnitudeRunes[runes[i+1]] {
			runes[i] = d
		}
	}
	return string(runes)
}

func (n *NormalizerService) Normalize(text string, question domain_models.QuestionType) *float64 {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, marker := range unknownMarkers {
		if strings.Contains(lower, marker) {
			return nil
		}
	}
	for _, marker := range noneMarkers {
		if strings.Contains(lower, marker) {
			return ptr(0)
		}
	}

	if question == domain_models.StepCarPrice {
		if price, ok := n.lookupVehiclePrice(lower); ok {
			return ptr(price)
		}
	}

	normalized := transliterateSinoDigits(lower)
	if sum, ok := parseKoreanUnits(normalized); ok {
		return ptr(sum)
	}

	match := digitsRe.FindString(normalized)
	if match == "" {
		return nil
	}
	raw, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}

	// Contextual magnitude correction for unit-less answers.
	if raw < 1000 && manWonQuestions[question] {
		raw *= 10_000
	} else if question == domain_models.StepHourlyWage && raw < 100 {
		raw *= 1_000
	}
	return ptr(raw)
}

// parseKoreanUnits sums the large-unit contributions of the text. Higher
// priority patterns suppress lower ones so "2천만" is not also counted as
// a bare "2천". Returns false when no unit pattern matched.
func parseKoreanUnits(text string) (float64, bool) {
	sum := 0.0

	if m := eokRe.FindStringSubmatch(text); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		sum += v * 100_000_000
	}

	cheonManMatched := false
	baekManMatched := false
	if m := cheonManRe.FindStringSubmatch(text); m != nil {
		cheonManMatched = true
		v, _ := strconv.ParseFloat(m[1], 64)
		sum += v * 10_000_000
		if m[2] != "" {
			b, _ := strconv.ParseFloat(m[2], 64)
			sum += b * 1_000_000
		}
	} else if m := baekManRe.FindStringSubmatch(text); m != nil {
		baekManMatched = true
		v, _ := strconv.ParseFloat(m[1], 64)
		sum += v * 1_000_000
	}

	if !cheonManMatched && !baekManMatched {
		if m := manRe.FindStringSubmatch(text); m != nil {
			v, _ := strconv.ParseFloat(m[1], 64)
			sum += v * 10_000
		}
	}
	if !cheonManMatched {
		if m := cheonRe.FindStringSubmatch(text); m != nil {
			v, _ := strconv.ParseFloat(m[1], 64)
			sum += v * 1_000
		}
	}

	if sum > 0 {
		return sum, true
	}
	return 0, false
}

// lookupVehiclePrice resolves a model name, applying 10%/year age depreciation
// (floored at 40% of base) when a 년식 pattern is present.
func (n *NormalizerService) lookupVehiclePrice(text string) (float64, bool) {
	for model, base := range vehiclePrices {
		if !strings.Contains(text, model) {
			continue
		}
		m := modelYearRe.FindStringSubmatch(text)
		if m == nil {
			return base, true
		}
		year, _ := strconv.Atoi(m[1])
		if year < 100 {
			year += 2000
		}
		age := n.now().Year() - year
		factor := math.Max(0.4, 1-float64(age)*0.10)
		return math.Round(base * factor), true
	}
	return 0, false
}

func ptr(v float64) *float64 {
	return &v
}
