package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"carwise/internal/models/domain_models"
	"carwise/internal/repositories"
	"carwise/pkg/utils"
)

type ConversationServiceInterface interface {
	StartChat(ctx context.Context) (*domain_models.ChatSession, error)
	HandleAnswer(ctx context.Context, sessionID, text string) (*domain_models.ChatSession, error)
	HandleHelp(ctx context.Context, sessionID string) (*domain_models.ChatSession, error)
	GetSession(ctx context.Context, sessionID string) (*domain_models.ChatSession, error)
}

type ConversationService struct {
	sessions   repositories.SessionRepository
	normalizer NormalizerServiceInterface
	validator  ValidatorServiceInterface
	calculator CalculatorServiceInterface
	parser     utils.NumberParserInterface
}

func NewConversationService(
	sessions repositories.SessionRepository,
	normalizer NormalizerServiceInterface,
	validator ValidatorServiceInterface,
	calculator CalculatorServiceInterface,
	parser utils.NumberParserInterface,
) ConversationServiceInterface {
	return &ConversationService{
		sessions:   sessions,
		normalizer: normalizer,
		validator:  validator,
		calculator: calculator,
		parser:     parser,
	}
}

var welcomeMessages = []string{
	"안녕하세요! 출퇴근 비용 계산을 도와드릴게요.",
	"몇 가지 질문에 답해주시면, 자동차 구매와 대중교통 중 어떤 선택이 더 경제적인지 알려드립니다.",
	"시작하시겠어요? (예/아니오)",
}

var yesNoPrompts = map[domain_models.QuestionType]string{
	domain_models.StepOwnCar:  "현재 보유 중인 차량이 있나요? (예/아니오)",
	domain_models.StepHasLoan: "보유 차량에 남은 할부나 대출이 있나요? (예/아니오)",
}

var yesNoHelp = map[domain_models.QuestionType]string{
	domain_models.StepWelcome: "예라고 답하시면 출퇴근 비용 계산을 시작해요. 질문은 10개 남짓이에요.",
	domain_models.StepOwnCar:  "이미 차가 있다면 팔고 새 차를 사는 경우를 계산해요. 보유 차량 시세와 남은 할부를 새 차 비용에서 빼드려요.",
	domain_models.StepHasLoan: "보유 차량에 남은 할부나 대출이 있으면 그만큼 차량의 실질 가치에서 빼고 계산해요.",
}

var helpMarkers = []string{"도움", "도와", "help", "설명", "무슨 말", "무슨 뜻"}

func (s *ConversationService) StartChat(ctx context.Context) (*domain_models.ChatSession, error) {
	now := time.Now()
	session := &domain_models.ChatSession{
		ID:        uuid.New().String(),
		Step:      domain_models.StepWelcome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, msg := range welcomeMessages {
		session.Append(domain_models.SenderBot, msg)
	}
	s.sessions.Save(session)
	return session, nil
}

func (s *ConversationService) GetSession(ctx context.Context, sessionID string) (*domain_models.ChatSession, error) {
	session, ok := s.sessions.Find(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (s *ConversationService) HandleHelp(ctx context.Context, sessionID string) (*domain_models.ChatSession, error) {
	session, ok := s.sessions.Find(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	s.appendHelp(session)
	s.touch(session)
	return session, nil
}

// HandleAnswer runs one turn of the state machine. Rejected or unparseable
// answers only grow the transcript; the step and stored values never move
// backwards.
func (s *ConversationService) HandleAnswer(ctx context.Context, sessionID, text string) (*domain_models.ChatSession, error) {
	session, ok := s.sessions.Find(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if session.IsComplete() {
		return nil, utils.ErrConversationFinished
	}

	session.Append(domain_models.SenderUser, text)

	if isHelpRequest(text) {
		s.appendHelp(session)
		s.touch(session)
		return session, nil
	}

	if domain_models.YesNoSteps[session.Step] {
		s.handleYesNo(session, text)
		s.touch(session)
		return session, nil
	}

	// Explicit "don't know" takes the per-field default without going
	// through the normalizer or the range check.
	if isUnknownText(text) {
		spec, _ := catalogEntry(session.Step)
		session.Append(domain_models.SenderBot,
			fmt.Sprintf("알겠어요, 평균적인 값인 %s%s으로 계산할게요.", formatNumber(spec.Default/spec.DisplayDiv), spec.Unit))
		if err := s.commitAnswer(session, spec.Default); err != nil {
			return nil, err
		}
		s.touch(session)
		return session, nil
	}

	value := s.normalizer.Normalize(text, session.Step)
	if value == nil {
		value = s.parseRemotely(ctx, text, session.Step)
	}
	if value == nil {
		session.Append(domain_models.SenderBot,
			"죄송해요, 숫자로 이해하지 못했어요. 다시 입력해주시거나 잘 모르시면 '모름'이라고 답해주세요.")
		s.touch(session)
		return session, nil
	}

	if err := s.validator.Validate(*value, session.Step); err != nil {
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			return nil, err
		}
		session.Append(domain_models.SenderBot, rangeErr.Reason)
		s.touch(session)
		return session, nil
	}

	if err := s.commitAnswer(session, *value); err != nil {
		return nil, err
	}
	s.touch(session)
	return session, nil
}

// parseRemotely asks the LLM fallback and fails closed: network errors,
// timeouts and the -1 "non-numeric entity" sentinel all come back as nil.
func (s *ConversationService) parseRemotely(ctx context.Context, text string, step domain_models.QuestionType) *float64 {
	value, err := s.parser.ParseNumber(ctx, text, string(step))
	if err != nil {
		log.Printf("Remote numeral fallback failed for step %s: %v", step, err)
		return nil
	}
	if value != nil && *value == -1 {
		return nil
	}
	return value
}

func (s *ConversationService) handleYesNo(session *domain_models.ChatSession, text string) {
	yes, ok := parseYesNo(text)
	if !ok {
		session.Append(domain_models.SenderBot, "예 또는 아니오로 답해주세요.")
		return
	}

	switch session.Step {
	case domain_models.StepWelcome:
		if !yes {
			session.Append(domain_models.SenderBot, "언제든 다시 방문해주세요!")
			return
		}
		s.moveTo(session, domain_models.StepDistance)
	case domain_models.StepOwnCar:
		session.OwnsCar = yes
		if yes {
			s.moveTo(session, domain_models.StepCurrentCarValue)
		} else {
			s.moveTo(session, domain_models.StepCarPrice)
		}
	case domain_models.StepHasLoan:
		session.HasLoan = yes
		if yes {
			s.moveTo(session, domain_models.StepMonthlyCarLoan)
		} else {
			s.moveTo(session, domain_models.StepCarPrice)
		}
	}
}

// commitAnswer stores an accepted value and advances to the next step.
func (s *ConversationService) commitAnswer(session *domain_models.ChatSession, value float64) error {
	switch session.Step {
	case domain_models.StepDistance:
		session.Commute.Distance = value
	case domain_models.StepWorkDays:
		session.Commute.WorkDaysPerMonth = value
	case domain_models.StepPublicTransportCost:
		session.Commute.PublicTransportCost = value
	case domain_models.StepPublicTransportTime:
		session.Commute.PublicTransportTime = value
	case domain_models.StepCarTime:
		session.Commute.CarTime = value
	case domain_models.StepCurrentCarValue:
		session.Car.CurrentCarValue = value
	case domain_models.StepMonthlyCarLoan:
		session.MonthlyCarLoan = value
	case domain_models.StepRemainingLoanMonths:
		session.RemainingLoanMonths = value
	case domain_models.StepCarPrice:
		session.Car.PurchasePrice = s.netPurchasePrice(session, value)
	case domain_models.StepFuelEfficiency:
		session.Car.FuelEfficiency = value
	case domain_models.StepFuelPrice:
		session.Car.FuelPrice = value
	case domain_models.StepInsurance:
		session.Car.Insurance = value
	case domain_models.StepTax:
		session.Car.Tax = value
	case domain_models.StepParking:
		session.Car.ParkingFee = value
	case domain_models.StepToll:
		session.Car.TollFee = value
	case domain_models.StepMaintenance:
		session.Car.MaintenanceFee = value
	case domain_models.StepDepreciation:
		session.Car.DepreciationYears = value
	case domain_models.StepHourlyWage:
		session.Time.HourlyWage = value
	}
	return s.moveTo(session, nextStep(session))
}

// netPurchasePrice subtracts the net value of an already owned car (trade-in
// minus remaining loan balance) from the target price. Negative equity adds
// to the cost and is worth a warning, but does not block the flow.
func (s *ConversationService) netPurchasePrice(session *domain_models.ChatSession, target float64) float64 {
	if !session.OwnsCar {
		return target
	}
	net := session.Car.CurrentCarValue - session.MonthlyCarLoan*session.RemainingLoanMonths
	if net < 0 {
		session.Append(domain_models.SenderBot,
			fmt.Sprintf("보유 차량의 남은 할부금이 시세보다 %s원 더 많아요. 그 차액만큼 구매 비용에 더해서 계산할게요.", formatNumber(-net)))
	}
	return math.Max(0, target-net)
}

func nextStep(session *domain_models.ChatSession) domain_models.QuestionType {
	switch session.Step {
	case domain_models.StepWelcome:
		return domain_models.StepDistance
	case domain_models.StepDistance:
		return domain_models.StepWorkDays
	case domain_models.StepWorkDays:
		return domain_models.StepPublicTransportCost
	case domain_models.StepPublicTransportCost:
		return domain_models.StepPublicTransportTime
	case domain_models.StepPublicTransportTime:
		return domain_models.StepCarTime
	case domain_models.StepCarTime:
		return domain_models.StepOwnCar
	case domain_models.StepCurrentCarValue:
		return domain_models.StepHasLoan
	case domain_models.StepMonthlyCarLoan:
		return domain_models.StepRemainingLoanMonths
	case domain_models.StepRemainingLoanMonths:
		return domain_models.StepCarPrice
	case domain_models.StepCarPrice:
		return domain_models.StepFuelEfficiency
	case domain_models.StepFuelEfficiency:
		return domain_models.StepFuelPrice
	case domain_models.StepFuelPrice:
		return domain_models.StepInsurance
	case domain_models.StepInsurance:
		return domain_models.StepTax
	case domain_models.StepTax:
		return domain_models.StepParking
	case domain_models.StepParking:
		return domain_models.StepToll
	case domain_models.StepToll:
		return domain_models.StepMaintenance
	case domain_models.StepMaintenance:
		return domain_models.StepDepreciation
	case domain_models.StepDepreciation:
		return domain_models.StepHourlyWage
	case domain_models.StepHourlyWage:
		return domain_models.StepResult
	}
	return domain_models.StepResult
}

// moveTo advances the step and appends its prompt, or finalizes the
// conversation when the terminal step is reached.
func (s *ConversationService) moveTo(session *domain_models.ChatSession, step domain_models.QuestionType) error {
	session.Step = step

	switch {
	case step == domain_models.StepResult:
		return s.finalize(session)
	case domain_models.YesNoSteps[step]:
		session.Append(domain_models.SenderBot, yesNoPrompts[step])
	default:
		if step == domain_models.StepCarPrice {
			session.Append(domain_models.SenderBot, "좋아요! 이제 자동차 관련 정보를 입력해주세요.")
		}
		if step == domain_models.StepHourlyWage {
			session.Append(domain_models.SenderBot, "마지막 질문입니다!")
		}
		spec, _ := catalogEntry(step)
		session.Append(domain_models.SenderBot, spec.Prompt)
	}
	return nil
}

// finalize guards against an incomplete state (unreachable by construction:
// every path to the terminal step passes through each required question) and
// runs the cost engine.
func (s *ConversationService) finalize(session *domain_models.ChatSession) error {
	if missing := missingRequiredField(session); missing != "" {
		session.Append(domain_models.SenderBot, "대화 상태에 문제가 생겼어요. 처음부터 다시 시작해주세요.")
		return fmt.Errorf("%w: field %s", utils.ErrIncompleteConversation, missing)
	}

	result := s.calculator.ComputeCosts(session.Commute, session.Car, session.Time)
	session.Result = &result

	session.Append(domain_models.SenderBot, "계산이 완료되었습니다!")
	for _, msg := range formatResultMessages(&result) {
		session.Append(domain_models.SenderBot, msg)
	}
	return nil
}

func missingRequiredField(session *domain_models.ChatSession) string {
	required := []struct {
		name  string
		value float64
	}{
		{"distance", session.Commute.Distance},
		{"workDays", session.Commute.WorkDaysPerMonth},
		{"publicTransportTime", session.Commute.PublicTransportTime},
		{"carTime", session.Commute.CarTime},
		{"fuelEfficiency", session.Car.FuelEfficiency},
		{"fuelPrice", session.Car.FuelPrice},
		{"depreciationYears", session.Car.DepreciationYears},
	}
	for _, field := range required {
		if field.value <= 0 {
			return field.name
		}
	}
	return ""
}

func formatResultMessages(result *domain_models.CalculationResult) []string {
	messages := []string{
		fmt.Sprintf("대중교통 월 총 비용: %s원\n- 교통비: %s원\n- 시간 비용: %s원",
			formatNumber(result.PublicTransport.TotalMonthlyCost),
			formatNumber(result.PublicTransport.MonthlyCost),
			formatNumber(result.PublicTransport.TimeCost)),
		fmt.Sprintf("자동차 월 총 비용: %s원\n- 감가상각: %s원\n- 유류비: %s원\n- 보험: %s원\n- 세금: %s원\n- 주차비: %s원\n- 통행료: %s원\n- 정비비: %s원\n- 시간 비용: %s원",
			formatNumber(result.Car.TotalMonthlyCost),
			formatNumber(result.Car.Breakdown.Depreciation),
			formatNumber(result.Car.Breakdown.Fuel),
			formatNumber(result.Car.Breakdown.Insurance),
			formatNumber(result.Car.Breakdown.Tax),
			formatNumber(result.Car.Breakdown.Parking),
			formatNumber(result.Car.Breakdown.Toll),
			formatNumber(result.Car.Breakdown.Maintenance),
			formatNumber(result.Car.TimeCost)),
		fmt.Sprintf("월 비용 차이: %s원",
			formatNumber(math.Abs(result.Car.TotalMonthlyCost-result.PublicTransport.TotalMonthlyCost))),
	}

	switch {
	case result.BreakEvenMonths == 0:
		messages = append(messages, "손익분기점: 없음 (추가 구매 비용이 없습니다)")
	case math.IsInf(result.BreakEvenMonths, 1):
		messages = append(messages, "손익분기점: 없음 (대중교통이 항상 저렴합니다)")
	default:
		years := int(result.BreakEvenMonths) / 12
		months := int(math.Round(math.Mod(result.BreakEvenMonths, 12)))
		messages = append(messages, fmt.Sprintf("손익분기점: 약 %d년 %d개월", years, months))
	}

	switch result.Recommendation {
	case domain_models.RecommendationPublicTransport:
		messages = append(messages, "추천: 대중교통을 이용하시는 것이 경제적으로 유리합니다!")
	case domain_models.RecommendationCar:
		messages = append(messages, "추천: 자동차를 구매하시는 것이 경제적으로 유리합니다!")
	default:
		messages = append(messages, "추천: 두 선택의 비용이 비슷합니다. 편의성을 고려하여 선택하세요!")
	}
	return messages
}

func (s *ConversationService) appendHelp(session *domain_models.ChatSession) {
	if session.IsComplete() {
		session.Append(domain_models.SenderBot, "이미 계산이 완료되었어요. 다시 계산하시려면 새 대화를 시작해주세요.")
		return
	}
	if help, ok := yesNoHelp[session.Step]; ok {
		session.Append(domain_models.SenderBot, help)
		return
	}
	spec, ok := catalogEntry(session.Step)
	if !ok {
		session.Append(domain_models.SenderBot, "지금 단계에서는 도움말이 없어요.")
		return
	}
	session.Append(domain_models.SenderBot, spec.Help)
}

func (s *ConversationService) touch(session *domain_models.ChatSession) {
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)
}

func isHelpRequest(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, marker := range helpMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isUnknownText(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, marker := range unknownMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func parseYesNo(text string) (yes bool, ok bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, marker := range []string{"아니", "no", "ㄴㄴ", "없"} {
		if strings.Contains(lower, marker) {
			return false, true
		}
	}
	if lower == "y" {
		return true, true
	}
	for _, marker := range []string{"예", "네", "응", "그래", "yes", "ㅇㅇ", "있"} {
		if strings.Contains(lower, marker) {
			return true, true
		}
	}
	return false, false
}
