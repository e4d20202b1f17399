package interview

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// SessionDuration is the time a candidate gets per question.
const SessionDuration = 45 * time.Minute

// Difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// DefaultLanguage is used when a request names none.
const DefaultLanguage = "C++"

var templates = map[string]string{
	"JavaScript": "function solution() {\n  \n}",
	"Python":     "def solution():\n    pass",
	"Java":       "class Solution {\n  public static void solution() {\n    \n  }\n}",
	"C++":        "#include <bits/stdc++.h>\nusing namespace std;\n\nvoid solution() {\n\n}",
}

// Languages lists the supported languages in display order.
var Languages = []string{"JavaScript", "Python", "Java", "C++"}

// Template returns the starter code for language.
func Template(language string) (string, bool) {
	t, ok := templates[language]
	return t, ok
}

// NormalizeDifficulty accepts any casing and defaults blank input to Medium.
func NormalizeDifficulty(d string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "":
		return DifficultyMedium, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, d)
	}
}

// NormalizeLanguage matches a supported language ignoring case and defaults blank input to C++.
func NormalizeLanguage(lang string) (string, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultLanguage, nil
	}
	for _, l := range Languages {
		if strings.EqualFold(l, lang) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
}

// Text holds a free-form field that models return either as a string or as a list.
type Text string

// UnmarshalJSON accepts a string, an array (joined by newlines) or any other JSON value verbatim.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		lines := make([]string, 0, len(items))
		for _, item := range items {
			var line string
			if err := json.Unmarshal(item, &line); err != nil {
				line = string(item)
			}
			lines = append(lines, line)
		}
		*t = Text(strings.Join(lines, "\n"))
		return nil
	}
	*t = Text(data)
	return nil
}

// Question is a generated coding problem.
type Question struct {
	Problem     string `json:"problem"`
	Examples    Text   `json:"examples"`
	Constraints Text   `json:"constraints"`
	FollowUp    Text   `json:"followUp"`
}

// Scores are the per-dimension grades of a solution.
type Scores struct {
	Correctness    float64 `json:"correctness"`
	Efficiency     float64 `json:"efficiency"`
	CodeQuality    float64 `json:"codeQuality"`
	Communication  float64 `json:"communication"`
	ProblemSolving float64 `json:"problemSolving"`
}

// Scorecard is the interviewer's evaluation of a solution.
type Scorecard struct {
	Scores   Scores `json:"scores"`
	Verdict  string `json:"verdict"`
	Feedback string `json:"feedback"`
}

// Session is one timed interview question.
type Session struct {
	ID         string    `json:"id"`
	Difficulty string    `json:"difficulty"`
	Language   string    `json:"language"`
	Template   string    `json:"template"`
	Question   Question  `json:"question"`
	StartedAt  time.Time `json:"startedAt"`
	Deadline   time.Time `json:"deadline"`
}

// Remaining returns the time left at now, never negative.
func (s Session) Remaining(now time.Time) time.Duration {
	left := s.Deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the deadline has passed at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.Deadline)
}

// SessionStore keeps sessions in memory, evicting the oldest beyond its limit.
type SessionStore struct {
	mu    sync.RWMutex
	byID  map[string]Session
	order []string
	limit int
}

// NewSessionStore constructs a SessionStore. A limit <= 0 keeps everything.
func NewSessionStore(limit int) *SessionStore {
	return &SessionStore{byID: make(map[string]Session), limit: limit}
}

// Put stores s.
func (st *SessionStore) Put(s Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.byID[s.ID]; !ok {
		st.order = append(st.order, s.ID)
	}
	st.byID[s.ID] = s
	for st.limit > 0 && len(st.order) > st.limit {
		delete(st.byID, st.order[0])
		st.order = st.order[1:]
	}
}

// Get returns the session with id.
func (st *SessionStore) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.byID[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}
