package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"

	"github.com/rs/zerolog"
)

// MaxChatMessageLength bounds a single prompt, in characters.
const MaxChatMessageLength = 4000

// ChatServiceImpl implements ports.ChatService.
type ChatServiceImpl struct {
	model ports.ChatModel
	log   zerolog.Logger
}

// NewChatService creates a new chat service.
func NewChatService(model ports.ChatModel, log zerolog.Logger) *ChatServiceImpl {
	return &ChatServiceImpl{model: model, log: log}
}

// Reply forwards one message to the chat model.
func (s *ChatServiceImpl) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperror.Validation("Invalid message")
	}
	if utf8.RuneCountInString(message) > MaxChatMessageLength {
		return "", apperror.Validation("Message is too long")
	}

	reply, err := s.model.Generate(ctx, message)
	if err != nil {
		s.log.Warn().Err(err).Msg("chat model request failed")
		return "", classifyChatError(err)
	}
	return reply, nil
}

func classifyChatError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case isNetworkError(err), strings.Contains(lower, "fetch failed"), strings.Contains(lower, "network"):
		return apperror.ErrNetwork(err)
	case strings.Contains(msg, "API_KEY"), strings.Contains(lower, "authentication"):
		return apperror.ErrCollaboratorAuth("Gemini", "Please check gemini.api_key.")
	case strings.Contains(lower, "quota"), strings.Contains(lower, "rate limit"):
		return apperror.ErrQuotaExceeded()
	}
	return apperror.ErrChatFailed(err)
}
