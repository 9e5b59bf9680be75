package services

import (
	"fmt"

	"carwise/internal/models/domain_models"
)

// QuestionSpec is the per-question configuration: the prompt shown when the
// step is reached, a help text, the plausibility window, and the default used
// when the user answers "모름". DisplayDiv converts the bounds back into the
// units the prompt uses (10,000 for amounts quoted in 만원).
type QuestionSpec struct {
	Prompt     string
	Help       string
	Min        float64
	Max        float64
	Unit       string
	DisplayDiv float64
	Default    float64
}

var questionCatalog = map[domain_models.QuestionType]QuestionSpec{
	domain_models.StepDistance: {
		Prompt:     "집에서 회사까지 편도 거리가 몇 km인가요? (예: 50)",
		Help:       "지도 앱에서 집-회사 경로를 검색하면 편도 거리를 확인할 수 있어요.",
		Min:        1, Max: 100, Unit: "km", DisplayDiv: 1, Default: 50,
	},
	domain_models.StepWorkDays: {
		Prompt:     "한 달에 며칠 출근하시나요? (예: 22)",
		Help:       "주 5일 근무라면 보통 한 달에 21~22일 정도예요. 재택 근무일은 빼고 세어주세요.",
		Min:        1, Max: 31, Unit: "일", DisplayDiv: 1, Default: 22,
	},
	domain_models.StepPublicTransportCost: {
		Prompt:     "대중교통 편도 비용은 얼마인가요? (예: 3200)",
		Help:       "지하철/버스 환승을 포함한 편도 요금이에요. 교통카드 기준으로 적어주세요.",
		Min:        0, Max: 20_000, Unit: "원", DisplayDiv: 1, Default: 3200,
	},
	domain_models.StepPublicTransportTime: {
		Prompt:     "대중교통으로 편도 몇 분 걸리나요? (예: 90)",
		Help:       "도보 이동과 환승 대기를 포함한 문 앞에서 문 앞까지의 시간이에요.",
		Min:        1, Max: 300, Unit: "분", DisplayDiv: 1, Default: 90,
	},
	domain_models.StepCarTime: {
		Prompt:     "자동차로는 편도 몇 분 걸릴까요? (예: 60)",
		Help:       "출퇴근 시간대 교통 상황 기준으로 적어주세요.",
		Min:        1, Max: 300, Unit: "분", DisplayDiv: 1, Default: 60,
	},
	domain_models.StepCurrentCarValue: {
		Prompt:     "보유 차량의 현재 시세는 얼마인가요? (예: 1500만)",
		Help:       "중고차 시세 사이트에서 내 차의 예상 판매가를 확인할 수 있어요.",
		Min:        0, Max: 300_000_000, Unit: "만원", DisplayDiv: 10_000, Default: 0,
	},
	domain_models.StepMonthlyCarLoan: {
		Prompt:     "할부/대출 월 납입금은 얼마인가요? (예: 50만)",
		Help:       "보유 차량에 대해 매달 내는 할부금이나 대출 상환액이에요.",
		Min:        0, Max: 5_000_000, Unit: "만원", DisplayDiv: 10_000, Default: 0,
	},
	domain_models.StepRemainingLoanMonths: {
		Prompt:     "남은 납입 개월 수는 몇 개월인가요? (예: 24)",
		Help:       "할부/대출이 끝날 때까지 남은 개월 수예요.",
		Min:        0, Max: 120, Unit: "개월", DisplayDiv: 1, Default: 0,
	},
	domain_models.StepCarPrice: {
		Prompt:     "구매하려는 차량 가격은 얼마인가요? (예: 3000만, 차종으로 답해도 돼요)",
		Help:       "차량 가격을 금액으로 적거나, '그랜저'처럼 차종 이름으로 답하면 시세로 계산해드려요. '21년식 셀토스'처럼 연식을 붙이면 감가를 반영해요.",
		Min:        0, Max: 300_000_000, Unit: "만원", DisplayDiv: 10_000, Default: 30_000_000,
	},
	domain_models.StepFuelEfficiency: {
		Prompt:     "차량 연비는 몇 km/L인가요? (예: 12)",
		Help:       "차량 제원표의 복합 연비를 적어주세요. 잘 모르면 '모름'이라고 답해도 돼요.",
		Min:        3, Max: 30, Unit: "km/L", DisplayDiv: 1, Default: 12,
	},
	domain_models.StepFuelPrice: {
		Prompt:     "유류비는 리터당 얼마인가요? (예: 1600)",
		Help:       "요즘 주유소 리터당 가격이에요. 휘발유는 보통 1,500~1,800원 정도예요.",
		Min:        1000, Max: 3000, Unit: "원", DisplayDiv: 1, Default: 1600,
	},
	domain_models.StepInsurance: {
		Prompt:     "연간 보험료는 얼마인가요? (예: 120만)",
		Help:       "1년치 자동차 보험료예요. 30대 무사고 기준 보통 80만~150만원 정도예요.",
		Min:        0, Max: 5_000_000, Unit: "만원", DisplayDiv: 10_000, Default: 1_200_000,
	},
	domain_models.StepTax: {
		Prompt:     "연간 자동차세는 얼마인가요? (예: 40만)",
		Help:       "배기량 기준으로 부과되는 1년치 자동차세예요. 2,000cc 승용차 기준 약 40만원이에요.",
		Min:        0, Max: 3_000_000, Unit: "만원", DisplayDiv: 10_000, Default: 400_000,
	},
	domain_models.StepParking: {
		Prompt:     "월 주차비는 얼마인가요? (예: 10만)",
		Help:       "집과 회사 주차비를 합한 한 달 금액이에요. 무료라면 '없음'이라고 답해주세요.",
		Min:        0, Max: 1_000_000, Unit: "만원", DisplayDiv: 10_000, Default: 100_000,
	},
	domain_models.StepToll: {
		Prompt:     "편도 통행료는 얼마인가요? (예: 3000)",
		Help:       "고속도로나 유료도로 통행료의 편도 합계예요. 없으면 '없음'이라고 답해주세요.",
		Min:        0, Max: 50_000, Unit: "원", DisplayDiv: 1, Default: 3000,
	},
	domain_models.StepMaintenance: {
		Prompt:     "연간 정비비는 얼마 정도 예상하시나요? (예: 80만)",
		Help:       "엔진오일, 타이어, 소모품 교체 등 1년치 예상 정비 비용이에요.",
		Min:        0, Max: 10_000_000, Unit: "만원", DisplayDiv: 10_000, Default: 800_000,
	},
	domain_models.StepDepreciation: {
		Prompt:     "차량을 몇 년 동안 사용하실 계획인가요? (감가상각 기간, 예: 5)",
		Help:       "차량 구매 비용을 몇 년에 나눠서 계산할지 정하는 기간이에요. 보통 5~10년으로 잡아요.",
		Min:        1, Max: 30, Unit: "년", DisplayDiv: 1, Default: 5,
	},
	domain_models.StepHourlyWage: {
		Prompt:     "시간의 가치를 계산하기 위해, 본인의 시급은 얼마로 생각하시나요? (예: 2만)",
		Help:       "연봉을 2,080시간(주 40시간 × 52주)으로 나누면 대략적인 시급이 나와요.",
		Min:        0, Max: 1_000_000, Unit: "원", DisplayDiv: 1, Default: 20_000,
	},
}

// ValidateCatalog checks that every numeric step has a complete entry.
// A gap here is a programming error and must fail at startup, not fall
// through to a generic message mid-conversation.
func ValidateCatalog() error {
	for _, step := range domain_models.NumericSteps {
		spec, ok := questionCatalog[step]
		if !ok {
			return fmt.Errorf("question catalog has no entry for step %q", step)
		}
		if spec.Prompt == "" || spec.Help == "" {
			return fmt.Errorf("question catalog entry for step %q is missing prompt or help text", step)
		}
		if spec.Max < spec.Min {
			return fmt.Errorf("question catalog entry for step %q has inverted bounds", step)
		}
		if spec.DisplayDiv <= 0 {
			return fmt.Errorf("question catalog entry for step %q has invalid display divisor", step)
		}
	}
	return nil
}

func catalogEntry(step domain_models.QuestionType) (QuestionSpec, bool) {
	spec, ok := questionCatalog[step]
	return spec, ok
}
