package interview

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	replies []string
	err     error
	prompts []string
}

func (f *fakeChat) Chat(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

const questionReply = "```json\n{\"problem\":\"Find two numbers that add up to target.\",\"examples\":\"[2,7,11,15], 9 -> [0,1]\",\"constraints\":\"n <= 10^4\",\"followUp\":\"Can you do it in O(n)?\"}\n```"

var testStart = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestService(chat ChatClient) (*Service, *time.Time) {
	now := testStart
	svc := NewService(chat, NewSessionStore(10))
	svc.Now = func() time.Time { return now }
	return svc, &now
}

func TestNewQuestionStartsSession(t *testing.T) {
	chat := &fakeChat{replies: []string{questionReply}}
	svc, _ := newTestService(chat)

	session, err := svc.NewQuestion(context.Background(), "hard", "")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, DifficultyHard, session.Difficulty)
	assert.Equal(t, "C++", session.Language)
	assert.True(t, strings.HasPrefix(session.Template, "#include <bits/stdc++.h>"))
	assert.Equal(t, "Find two numbers that add up to target.", session.Question.Problem)
	assert.Equal(t, testStart.Add(45*time.Minute), session.Deadline)
	require.Len(t, chat.prompts, 1)
	assert.Contains(t, chat.prompts[0], "FAANG-style Hard coding interview problem")

	stored, err := svc.Session(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, stored)
}

func TestNewQuestionFailures(t *testing.T) {
	cases := []struct {
		name string
		chat ChatClient
		want error
	}{
		{name: "placeholder", chat: PlaceholderClient{}, want: ErrChatNotConfigured},
		{name: "transport", chat: &fakeChat{err: errors.New("deadline exceeded")}, want: ErrGenerationFailed},
		{name: "no_json", chat: &fakeChat{replies: []string{"Sorry, I can't."}}, want: ErrGenerationFailed},
		{name: "schema", chat: &fakeChat{replies: []string{`{"examples":"x"}`}}, want: ErrGenerationFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(tc.chat)
			_, err := svc.NewQuestion(context.Background(), "", "")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewQuestionValidatesInput(t *testing.T) {
	chat := &fakeChat{replies: []string{questionReply}}
	svc, _ := newTestService(chat)

	_, err := svc.NewQuestion(context.Background(), "extreme", "Go")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
	_, err = svc.NewQuestion(context.Background(), "Easy", "Fortran")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
	assert.Empty(t, chat.prompts)
}

func TestClarify(t *testing.T) {
	chat := &fakeChat{replies: []string{questionReply, "  Yes, the input fits in memory.  "}}
	svc, _ := newTestService(chat)
	session, err := svc.NewQuestion(context.Background(), "", "Python")
	require.NoError(t, err)

	reply, err := svc.Clarify(context.Background(), session.ID, "Does the input fit in memory?")
	require.NoError(t, err)
	assert.Equal(t, "Yes, the input fits in memory.", reply)
	assert.Contains(t, chat.prompts[1], "Answer the candidate's clarification briefly and realistically.")
	assert.Contains(t, chat.prompts[1], "Find two numbers")

	_, err = svc.Clarify(context.Background(), session.ID, " ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	_, err = svc.Clarify(context.Background(), "missing", "?")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEvaluate(t *testing.T) {
	chat := &fakeChat{replies: []string{questionReply, "Evaluation:\n" + validScorecard}}
	svc, now := newTestService(chat)
	session, err := svc.NewQuestion(context.Background(), "", "Java")
	require.NoError(t, err)

	*now = testStart.Add(30 * time.Minute)
	eval, err := svc.Evaluate(context.Background(), session.ID, "class Solution {}")
	require.NoError(t, err)

	assert.Equal(t, "Hire", eval.Scorecard.Verdict)
	assert.False(t, eval.Overtime)
	assert.Equal(t, (15 * time.Minute).Milliseconds(), eval.RemainingMs)
	assert.Contains(t, chat.prompts[1], "Language: Java")
	assert.Contains(t, chat.prompts[1], "class Solution {}")
}

func TestEvaluateOvertimeAndErrors(t *testing.T) {
	chat := &fakeChat{replies: []string{questionReply, validScorecard, "not json"}}
	svc, now := newTestService(chat)
	session, err := svc.NewQuestion(context.Background(), "", "")
	require.NoError(t, err)

	*now = testStart.Add(time.Hour)
	eval, err := svc.Evaluate(context.Background(), session.ID, "int main() {}")
	require.NoError(t, err)
	assert.True(t, eval.Overtime)
	assert.Zero(t, eval.RemainingMs)

	_, err = svc.Evaluate(context.Background(), session.ID, "int main() {}")
	assert.ErrorIs(t, err, ErrGenerationFailed)
	_, err = svc.Evaluate(context.Background(), session.ID, "")
	assert.ErrorIs(t, err, ErrEmptyCode)
}
