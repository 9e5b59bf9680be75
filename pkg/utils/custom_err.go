package utils

import "errors"

var (
	ErrSessionNotFound        = errors.New("chat session not found")
	ErrConversationFinished   = errors.New("conversation already finished")
	ErrIncompleteConversation = errors.New("conversation state incomplete at terminal step")
	ErrInvalidInput           = errors.New("invalid input")
)
