package domain_models

import "time"

type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// ChatSession is the conversation context for a single user. It is owned by
// one caller at a time and only ever moves forward: an accepted answer mutates
// it exactly once, a rejected answer leaves everything but the transcript
// untouched. Once Step reaches StepResult the session is read-only.
type ChatSession struct {
	ID   string
	Step QuestionType

	Commute CommuteInfo
	Car     CarCosts
	Time    TimeValue

	OwnsCar             bool
	HasLoan             bool
	MonthlyCarLoan      float64
	RemainingLoanMonths float64

	Messages []Message
	Result   *CalculationResult

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *ChatSession) Append(sender Sender, text string) {
	s.Messages = append(s.Messages, Message{Sender: sender, Text: text})
}

func (s *ChatSession) IsComplete() bool {
	return s.Step == StepResult
}
