package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-backend/internal/extract"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/telemetry"
)

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType, fileName string) (string, error)
}

// Service contains business logic for analyses.
type Service struct {
	Repo      Repo
	Extractor TextExtractor
	Now       func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, extractor TextExtractor) *Service {
	return &Service{Repo: repo, Extractor: extractor, Now: time.Now}
}

// Analyze validates the inputs, builds the report and stores it.
func (s *Service) Analyze(ctx context.Context, resumeText, jobDescription string) (Analysis, error) {
	return s.analyze(ctx, resumeText, jobDescription, "")
}

// AnalyzeUpload extracts the resume text from upload and analyzes it against jobDescription.
func (s *Service) AnalyzeUpload(ctx context.Context, upload extract.Upload, jobDescription string) (Analysis, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, ErrMissingJobDescription
	}
	if s.Extractor == nil {
		return Analysis{}, errors.New("missing text extractor")
	}
	text, err := s.Extractor.Extract(ctx, upload.Data, upload.MimeType, upload.FileName)
	if err != nil {
		return Analysis{}, fmt.Errorf("extract %s: %w", upload.FileName, err)
	}
	return s.analyze(ctx, text, jobDescription, upload.FileName)
}

// Get returns an analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	if strings.TrimSpace(analysisID) == "" {
		return Analysis{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, analysisID)
}

func (s *Service) analyze(ctx context.Context, resumeText, jobDescription, sourceFile string) (Analysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return Analysis{}, ErrMissingResume
	}
	if strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, ErrMissingJobDescription
	}

	startedAt := s.now()
	analysis := Analysis{
		ID:         uuid.NewString(),
		SourceFile: sourceFile,
		CreatedAt:  startedAt,
	}
	metrics.IncAnalysisStarted()

	analysis.Report = BuildReport(resumeText, jobDescription)
	if err := s.Repo.Create(ctx, analysis); err != nil {
		s.fail(ctx, analysis.ID, startedAt, err)
		return Analysis{}, fmt.Errorf("store analysis: %w", err)
	}

	duration := durationMs(startedAt, s.now())
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(duration)
	telemetry.Info("analysis.completed", map[string]any{
		"request_id":       middleware.RequestIDFrom(ctx),
		"analysis_id":      analysis.ID,
		"source_file":      sourceFile,
		"match_percentage": analysis.Report.MatchPercentage,
		"ats_score":        analysis.Report.ATSScore,
		"duration_ms":      duration,
	})
	return analysis, nil
}

func (s *Service) fail(ctx context.Context, analysisID string, startedAt time.Time, err error) {
	duration := durationMs(startedAt, s.now())
	metrics.IncAnalysisFailed()
	metrics.ObserveAnalysisDurationMs(duration)
	telemetry.Error("analysis.failed", map[string]any{
		"request_id":  middleware.RequestIDFrom(ctx),
		"analysis_id": analysisID,
		"error":       err.Error(),
		"duration_ms": duration,
	})
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func durationMs(startedAt, completedAt time.Time) float64 {
	return float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0
}
