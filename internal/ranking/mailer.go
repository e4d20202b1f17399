package ranking

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"career-backend/internal/shared/telemetry"
)

// Default outreach text.
const (
	DefaultSubject = "Interview Opportunity"
	DefaultMessage = "We are impressed with your profile and would like to invite you for an interview."
)

// Message is one outreach email.
type Message struct {
	CandidateID string
	To          string
	Greeting    string
	Subject     string
	Body        string
}

// Mailer delivers outreach messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer logs messages instead of sending them.
type LogMailer struct{}

// Send logs msg.
func (LogMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	telemetry.Info("ranking.outreach.sent", map[string]any{
		"candidate_id": msg.CandidateID,
		"to":           msg.To,
		"subject":      msg.Subject,
		"greeting":     msg.Greeting,
	})
	return nil
}

// greeting formats a salutation, fixing the case of shouted or lowercase names.
func greeting(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == defaultName {
		return "Hello,"
	}
	return "Dear " + cases.Title(language.English).String(strings.ToLower(name)) + ","
}

func newMessage(c Candidate, subject, body string) Message {
	return Message{
		CandidateID: c.ID,
		To:          c.Email,
		Greeting:    greeting(c.Name),
		Subject:     subject,
		Body:        body,
	}
}
