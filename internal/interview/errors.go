package interview

import "errors"

var (
	ErrChatNotConfigured = errors.New("chat backend not configured")
	ErrGenerationFailed  = errors.New("generation failed")
	ErrSessionNotFound   = errors.New("interview session not found")
	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
	ErrInvalidLanguage   = errors.New("unsupported language")
	ErrEmptyQuestion     = errors.New("clarification question is required")
	ErrEmptyCode         = errors.New("solution code is required")
)

const (
	ErrorCodeGenerationFailed = "generation_failed"
	ErrorCodeChatUnavailable  = "chat_unavailable"
)
