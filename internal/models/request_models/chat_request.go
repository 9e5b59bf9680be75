package request_models

type AnswerRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type HelpRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
