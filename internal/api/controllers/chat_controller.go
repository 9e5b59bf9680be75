package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carwise/internal/models/request_models"
	"carwise/internal/models/response_models"
	"carwise/internal/services"
	"carwise/pkg/utils"
)

type ChatController struct {
	conversationService services.ConversationServiceInterface
}

func NewChatController(conversationService services.ConversationServiceInterface) *ChatController {
	return &ChatController{
		conversationService: conversationService,
	}
}

func (ctl *ChatController) StartChatHandler(c *gin.Context) {
	session, err := ctl.conversationService.StartChat(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewChatResponse(session), "Chat started")
}

func (ctl *ChatController) AnswerHandler(c *gin.Context) {
	var req request_models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id and message are required")
		return
	}
	session, err := ctl.conversationService.HandleAnswer(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewChatResponse(session), "Answer accepted")
}

func (ctl *ChatController) HelpHandler(c *gin.Context) {
	var req request_models.HelpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}
	session, err := ctl.conversationService.HandleHelp(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewChatResponse(session), "Help provided")
}

func (ctl *ChatController) GetTranscriptHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	session, err := ctl.conversationService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewChatResponse(session), "")
}
