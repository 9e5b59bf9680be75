package response_models

import "carwise/internal/models/domain_models"

// ChatResponse is the presentation boundary of a conversation: the ordered
// transcript, the current step (so the UI can choose quick-reply buttons),
// and the computed result once the terminal step is reached.
type ChatResponse struct {
	SessionID    string                  `json:"session_id"`
	Step         string                  `json:"step"`
	Messages     []domain_models.Message `json:"messages"`
	QuickReplies []string                `json:"quick_replies,omitempty"`
	IsComplete   bool                    `json:"is_complete"`
	Result       *CalculationResponse    `json:"result,omitempty"`
}

func NewChatResponse(session *domain_models.ChatSession) *ChatResponse {
	resp := &ChatResponse{
		SessionID:    session.ID,
		Step:         string(session.Step),
		Messages:     session.Messages,
		QuickReplies: quickRepliesFor(session.Step),
		IsComplete:   session.IsComplete(),
	}
	if session.Result != nil {
		resp.Result = NewCalculationResponse(session.Result)
	}
	return resp
}

func quickRepliesFor(step domain_models.QuestionType) []string {
	switch {
	case step == domain_models.StepResult:
		return nil
	case domain_models.YesNoSteps[step]:
		return []string{"예", "아니오"}
	default:
		return []string{"모름"}
	}
}
