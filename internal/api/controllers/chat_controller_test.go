package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"carwise/internal/models/response_models"
	"carwise/internal/repositories"
	"carwise/internal/services"
	"carwise/pkg/utils"
)

type chatEnvelope struct {
	Status  string                        `json:"status"`
	Code    int                           `json:"code"`
	Message string                        `json:"message"`
	Data    *response_models.ChatResponse `json:"data"`
}

func newChatRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validator, err := services.NewValidatorService()
	if err != nil {
		t.Fatalf("NewValidatorService: %v", err)
	}
	conversation := services.NewConversationService(
		repositories.NewInMemorySessionRepository(time.Hour),
		services.NewNormalizerService(),
		validator,
		services.NewCalculatorService(),
		utils.NewDisabledNumberParser(),
	)
	controller := NewChatController(conversation)

	r := gin.New()
	chat := r.Group("/chat")
	chat.POST("/start", controller.StartChatHandler)
	chat.POST("/answer", controller.AnswerHandler)
	chat.POST("/help", controller.HelpHandler)
	chat.GET("/:sessionId", controller.GetTranscriptHandler)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, chatEnvelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope chatEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("malformed response body %q: %v", w.Body.String(), err)
	}
	return w, envelope
}

func startChat(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w, envelope := doJSON(t, router, http.MethodPost, "/chat/start", "")
	if w.Code != http.StatusOK {
		t.Fatalf("start returned %d: %s", w.Code, w.Body.String())
	}
	if envelope.Data == nil || envelope.Data.SessionID == "" {
		t.Fatal("start response carries no session id")
	}
	return envelope.Data.SessionID
}

func TestStartChatHandler(t *testing.T) {
	router := newChatRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/chat/start", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if envelope.Status != "success" {
		t.Errorf("expected success status, got %q", envelope.Status)
	}
	if envelope.Data.Step != "welcome" {
		t.Errorf("expected welcome step, got %q", envelope.Data.Step)
	}
	if len(envelope.Data.Messages) != 3 {
		t.Errorf("expected 3 greeting messages, got %d", len(envelope.Data.Messages))
	}
	if len(envelope.Data.QuickReplies) != 2 {
		t.Errorf("expected yes/no quick replies, got %v", envelope.Data.QuickReplies)
	}
}

func TestAnswerHandler(t *testing.T) {
	router := newChatRouter(t)
	sessionID := startChat(t, router)

	body := fmt.Sprintf(`{"session_id": %q, "message": "예"}`, sessionID)
	w, envelope := doJSON(t, router, http.MethodPost, "/chat/answer", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if envelope.Data.Step != "distance" {
		t.Errorf("expected distance step after accepting, got %q", envelope.Data.Step)
	}
	if envelope.Data.IsComplete {
		t.Error("session must not be complete after one answer")
	}
	if len(envelope.Data.QuickReplies) != 1 || envelope.Data.QuickReplies[0] != "모름" {
		t.Errorf("numeric step should offer 모름, got %v", envelope.Data.QuickReplies)
	}
}

func TestAnswerHandler_UnknownSession(t *testing.T) {
	router := newChatRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/chat/answer",
		`{"session_id": "missing", "message": "50"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if envelope.Status != "error" {
		t.Errorf("expected error status, got %q", envelope.Status)
	}
}

func TestAnswerHandler_BadRequest(t *testing.T) {
	router := newChatRouter(t)
	sessionID := startChat(t, router)

	body := fmt.Sprintf(`{"session_id": %q}`, sessionID)
	w, _ := doJSON(t, router, http.MethodPost, "/chat/answer", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing message, got %d", w.Code)
	}
}

func TestHelpHandler(t *testing.T) {
	router := newChatRouter(t)
	sessionID := startChat(t, router)

	body := fmt.Sprintf(`{"session_id": %q}`, sessionID)
	w, envelope := doJSON(t, router, http.MethodPost, "/chat/help", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if envelope.Data.Step != "welcome" {
		t.Errorf("help must not advance the step, got %q", envelope.Data.Step)
	}
	if len(envelope.Data.Messages) != 4 {
		t.Errorf("expected help appended to transcript, got %d messages", len(envelope.Data.Messages))
	}
}

func TestGetTranscriptHandler(t *testing.T) {
	router := newChatRouter(t)
	sessionID := startChat(t, router)

	w, envelope := doJSON(t, router, http.MethodGet, "/chat/"+sessionID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if envelope.Data.SessionID != sessionID {
		t.Errorf("transcript for wrong session: %q", envelope.Data.SessionID)
	}
	if len(envelope.Data.Messages) != 3 {
		t.Errorf("expected the greeting transcript, got %d messages", len(envelope.Data.Messages))
	}

	w, _ = doJSON(t, router, http.MethodGet, "/chat/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown session, got %d", w.Code)
	}
}
