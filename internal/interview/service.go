package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/telemetry"
)

const defaultMaxSessions = 1000

// Evaluation is a graded submission.
type Evaluation struct {
	SessionID   string    `json:"sessionId"`
	Scorecard   Scorecard `json:"scorecard"`
	SubmittedAt time.Time `json:"submittedAt"`
	Overtime    bool      `json:"overtime"`
	RemainingMs int64     `json:"remainingMs"`
}

// Service runs interview sessions against a ChatClient.
type Service struct {
	Chat     ChatClient
	Sessions *SessionStore
	Now      func() time.Time
}

// NewService constructs a Service. A nil chat client falls back to PlaceholderClient.
func NewService(chat ChatClient, sessions *SessionStore) *Service {
	if chat == nil {
		chat = PlaceholderClient{}
	}
	if sessions == nil {
		sessions = NewSessionStore(defaultMaxSessions)
	}
	return &Service{Chat: chat, Sessions: sessions, Now: time.Now}
}

// NewQuestion generates a question and starts a timed session.
func (s *Service) NewQuestion(ctx context.Context, difficulty, language string) (Session, error) {
	difficulty, err := NormalizeDifficulty(difficulty)
	if err != nil {
		return Session{}, err
	}
	language, err = NormalizeLanguage(language)
	if err != nil {
		return Session{}, err
	}

	reply, err := s.Chat.Chat(ctx, questionPrompt(difficulty))
	if err != nil {
		return Session{}, s.fail(ctx, "question", "", err)
	}
	var q Question
	if err := decodeReply(reply, schemaQuestion, &q); err != nil {
		return Session{}, s.fail(ctx, "question", "", err)
	}

	template, _ := Template(language)
	startedAt := s.now()
	session := Session{
		ID:         uuid.NewString(),
		Difficulty: difficulty,
		Language:   language,
		Template:   template,
		Question:   q,
		StartedAt:  startedAt,
		Deadline:   startedAt.Add(SessionDuration),
	}
	s.Sessions.Put(session)

	metrics.IncInterviewGenerated("question")
	telemetry.Info("interview.question_generated", map[string]any{
		"request_id": middleware.RequestIDFrom(ctx),
		"session_id": session.ID,
		"difficulty": difficulty,
		"language":   language,
	})
	return session, nil
}

// Clarify asks the interviewer a clarifying question about the session's problem.
func (s *Service) Clarify(ctx context.Context, sessionID, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	reply, err := s.Chat.Chat(ctx, clarificationPrompt(session.Question.Problem, question))
	if err != nil {
		return "", s.fail(ctx, "clarify", sessionID, err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", s.fail(ctx, "clarify", sessionID, fmt.Errorf("%w: empty reply", ErrGenerationFailed))
	}
	metrics.IncInterviewGenerated("clarify")
	return reply, nil
}

// Evaluate grades code for the session. Late submissions are graded and flagged as overtime.
func (s *Service) Evaluate(ctx context.Context, sessionID, code string) (Evaluation, error) {
	if strings.TrimSpace(code) == "" {
		return Evaluation{}, ErrEmptyCode
	}
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return Evaluation{}, err
	}
	submittedAt := s.now()

	reply, err := s.Chat.Chat(ctx, evaluationPrompt(session.Language, session.Question.Problem, code))
	if err != nil {
		return Evaluation{}, s.fail(ctx, "evaluate", sessionID, err)
	}
	var card Scorecard
	if err := decodeReply(reply, schemaScorecard, &card); err != nil {
		return Evaluation{}, s.fail(ctx, "evaluate", sessionID, err)
	}

	metrics.IncInterviewGenerated("evaluate")
	telemetry.Info("interview.evaluated", map[string]any{
		"request_id": middleware.RequestIDFrom(ctx),
		"session_id": sessionID,
		"verdict":    card.Verdict,
		"overtime":   session.Expired(submittedAt),
	})
	return Evaluation{
		SessionID:   sessionID,
		Scorecard:   card,
		SubmittedAt: submittedAt,
		Overtime:    session.Expired(submittedAt),
		RemainingMs: session.Remaining(submittedAt).Milliseconds(),
	}, nil
}

// Session returns a stored session.
func (s *Service) Session(sessionID string) (Session, error) {
	return s.Sessions.Get(sessionID)
}

// fail records a chat failure. Anything other than a missing backend becomes ErrGenerationFailed.
func (s *Service) fail(ctx context.Context, step, sessionID string, err error) error {
	metrics.IncInterviewFailed(step)
	telemetry.Warn("interview.chat_failed", map[string]any{
		"request_id": middleware.RequestIDFrom(ctx),
		"session_id": sessionID,
		"step":       step,
		"error":      err.Error(),
	})
	if errors.Is(err, ErrChatNotConfigured) || errors.Is(err, ErrGenerationFailed) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrGenerationFailed, step, err)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
