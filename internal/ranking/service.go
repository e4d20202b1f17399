package ranking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-backend/internal/extract"
	"career-backend/internal/matching"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/telemetry"
	"career-backend/internal/shared/util"
)

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType, fileName string) (string, error)
}

// Service ingests resumes into a Collection and runs outreach.
type Service struct {
	Collection *Collection
	Extractor  TextExtractor
	Mailer     Mailer
	Now        func() time.Time
}

// NewService constructs a Service. A nil mailer falls back to LogMailer.
func NewService(collection *Collection, extractor TextExtractor, mailer Mailer) *Service {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &Service{Collection: collection, Extractor: extractor, Mailer: mailer, Now: time.Now}
}

// Evaluate scores resume text against jobText and builds a Candidate with a fresh id.
func (s *Service) Evaluate(fileName, resumeText, jobText, contentHash string) Candidate {
	resumeSkills := matching.RankerSkills.Extract(resumeText)
	jobSkills := matching.SkillSet{Technical: []string{}, Soft: []string{}}
	if strings.TrimSpace(jobText) != "" {
		jobSkills = matching.RankerSkills.Extract(jobText)
	}
	missing, present := matching.CompareTechnical(resumeSkills, jobSkills)
	pct := Score(resumeText, jobText)

	return Candidate{
		ID:              uuid.NewString(),
		FileName:        fileName,
		ContentHash:     contentHash,
		ResumeText:      resumeText,
		Name:            ExtractName(resumeText),
		Email:           ExtractEmail(resumeText),
		Phone:           ExtractPhone(resumeText),
		ResumeSkills:    resumeSkills,
		JobSkills:       jobSkills,
		MatchPercentage: pct,
		ATSScore:        matching.RankerATS.Score(resumeText),
		MissingSkills:   missing,
		PresentSkills:   present,
		Badge:           Badge(pct),
		CreatedAt:       s.now(),
	}
}

// Ingest extracts and scores files one at a time and adds the successful ones to the collection.
// A failing file is reported in the result and does not stop the batch. When ctx is cancelled the
// files already processed are kept and ctx.Err() is returned with the partial result. A non-blank
// jobText replaces the collection's job description first.
func (s *Service) Ingest(ctx context.Context, files []extract.Upload, jobText string) (BatchResult, error) {
	result := BatchResult{Added: []Candidate{}, Failures: []FileFailure{}}
	if len(files) == 0 {
		return result, ErrNoFiles
	}
	if strings.TrimSpace(jobText) != "" {
		s.Collection.SetJobDescription(jobText)
	}
	job := s.Collection.JobDescription()
	requestID := middleware.RequestIDFrom(ctx)

	var ctxErr error
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		text, err := s.extract(ctx, f)
		if err != nil {
			result.Failures = append(result.Failures, FileFailure{
				FileName: f.FileName,
				Code:     extract.ErrorCode(err),
				Message:  err.Error(),
			})
			telemetry.Warn("ranking.file_failed", map[string]any{
				"request_id": requestID,
				"file_name":  f.FileName,
				"error":      err.Error(),
			})
			continue
		}
		result.Added = append(result.Added, s.Evaluate(f.FileName, text, job, util.HashContent(f.Data)))
	}

	s.Collection.Add(result.Added...)
	metrics.AddCandidatesIngested(len(result.Added))
	telemetry.Info("ranking.batch_ingested", map[string]any{
		"request_id": requestID,
		"files":      len(files),
		"added":      len(result.Added),
		"failed":     len(result.Failures),
		"total":      s.Collection.Len(),
	})
	return result, ctxErr
}

func (s *Service) extract(ctx context.Context, f extract.Upload) (string, error) {
	if s.Extractor == nil {
		return "", fmt.Errorf("extract %s: missing text extractor", f.FileName)
	}
	text, err := s.Extractor.Extract(ctx, f.Data, f.MimeType, f.FileName)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", extract.ErrNoText
	}
	return text, nil
}

// SendOutreach sends subject and message to every selected candidate that has an email address,
// then clears the selection. Blank subject or message fall back to the defaults.
func (s *Service) SendOutreach(ctx context.Context, subject, message string) (OutreachResult, error) {
	selected := s.Collection.Selected()
	if len(selected) == 0 {
		return OutreachResult{}, ErrNoSelection
	}
	if strings.TrimSpace(subject) == "" {
		subject = DefaultSubject
	}
	if strings.TrimSpace(message) == "" {
		message = DefaultMessage
	}

	result := OutreachResult{Prepared: len(selected), NoEmail: []string{}}
	for _, cand := range selected {
		if cand.Email == "" {
			result.NoEmail = append(result.NoEmail, cand.ID)
			continue
		}
		if err := s.Mailer.Send(ctx, newMessage(cand, subject, message)); err != nil {
			return result, fmt.Errorf("send outreach to %s: %w", cand.ID, err)
		}
		result.Sent++
	}
	s.Collection.ClearSelection()
	metrics.AddOutreachSent(result.Sent)
	telemetry.Info("ranking.outreach.completed", map[string]any{
		"request_id": middleware.RequestIDFrom(ctx),
		"prepared":   result.Prepared,
		"sent":       result.Sent,
	})
	return result, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
