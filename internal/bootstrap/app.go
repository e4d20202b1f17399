package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"career-backend/internal/analyses"
	"career-backend/internal/extract"
	"career-backend/internal/interview"
	"career-backend/internal/ranking"
	"career-backend/internal/services/health"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/server"
	"career-backend/internal/shared/telemetry"
)

const maxInterviewSessions = 1000

// App holds shared dependencies and the router built from them.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Extractor        *extract.Extractor
	Chat             interview.ChatClient
	AnalysesRepo     analyses.Repo
	AnalysesService  *analyses.Service
	RankingService   *ranking.Service
	InterviewService *interview.Service
	ExtractHandler   *extract.Handler
	AnalysisHandler  *analyses.Handler
	RankingHandler   *ranking.Handler
	InterviewHandler *interview.Handler
	HealthHandler    *health.Handler

	closers []func() error
}

// Build prepares every dependency and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	telemetry.Init(telemetry.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	app := &App{Config: cfg}
	app.Extractor = extract.New(buildOCR(cfg))

	chat, err := app.buildChat(ctx)
	if err != nil {
		return nil, err
	}
	app.Chat = chat

	buildServices(app)
	app.Router = server.NewRouter(cfg,
		app.ExtractHandler,
		app.AnalysisHandler,
		app.RankingHandler,
		app.InterviewHandler,
		app.HealthHandler,
	)

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":            cfg.Env,
		"ocr_enabled":    cfg.TikaURL != "",
		"chat_enabled":   cfg.GeminiAPIKey != "",
		"gemini_model":   cfg.GeminiModel,
		"max_upload_mb":  cfg.MaxUploadMB,
		"rate_limit_rps": cfg.RateLimitRPS,
	})
	return app, nil
}

// Close releases clients opened by Build.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func buildOCR(cfg config.Config) extract.OCR {
	if strings.TrimSpace(cfg.TikaURL) == "" {
		telemetry.Info("bootstrap: TIKA_URL empty; image uploads disabled", nil)
		return nil
	}
	return extract.NewTikaClient(cfg.TikaURL, extract.WithTimeout(cfg.TikaTimeout))
}

func (a *App) buildChat(ctx context.Context) (interview.ChatClient, error) {
	if strings.TrimSpace(a.Config.GeminiAPIKey) == "" {
		telemetry.Info("bootstrap: GEMINI_API_KEY empty; interview mode disabled", nil)
		return interview.PlaceholderClient{}, nil
	}
	client, err := interview.NewGeminiClient(ctx, a.Config.GeminiAPIKey, a.Config.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	a.closers = append(a.closers, client.Close)
	return client, nil
}

func buildServices(app *App) {
	maxUpload := app.Config.MaxUploadBytes()

	app.AnalysesRepo = analyses.NewMemoryRepo(app.Config.MaxStoredReports)
	app.AnalysesService = analyses.NewService(app.AnalysesRepo, app.Extractor)
	app.RankingService = ranking.NewService(ranking.NewCollection(), app.Extractor, ranking.LogMailer{})
	app.InterviewService = interview.NewService(app.Chat, interview.NewSessionStore(maxInterviewSessions))

	app.ExtractHandler = extract.NewHandler(app.Extractor, maxUpload)
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, maxUpload)
	app.RankingHandler = ranking.NewHandler(app.RankingService, maxUpload)
	app.InterviewHandler = interview.NewHandler(app.InterviewService)

	status := health.NewService(app.Extractor.OCR != nil, "")
	if gemini, ok := app.Chat.(*interview.GeminiClient); ok {
		status.ChatModel = gemini.Model()
	}
	status.Analyses = app.AnalysesRepo.Len
	status.Candidates = app.RankingService.Collection.Len
	app.HealthHandler = health.NewHandler(status)
}
