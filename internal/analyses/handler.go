package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/extract"
	"career-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc       *Service
	MaxUpload int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUpload int64) *Handler {
	return &Handler{Svc: svc, MaxUpload: maxUpload}
}

type analyzeRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyze)
	rg.POST("/analyses/upload", h.analyzeUpload)
	rg.GET("/analyses/:id", h.getAnalysis)
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidBody(c)
		return
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.Created(c, analysis)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	if h.MaxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUpload)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		extract.RespondUploadError(c, err)
		return
	}
	upload, err := extract.ReadUpload(fileHeader)
	if err != nil {
		extract.RespondUploadError(c, err)
		return
	}

	analysis, err := h.Svc.AnalyzeUpload(c.Request.Context(), upload, c.PostForm("jobDescription"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.Created(c, analysis)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	analysis, err := h.Svc.Get(c.Request.Context(), analysisID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingResume):
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, msgMissingResume, []map[string]string{
			{"field": "resumeText", "issue": "required"},
		})
	case errors.Is(err, ErrMissingJobDescription):
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, msgMissingJobDescription, []map[string]string{
			{"field": "jobDescription", "issue": "required"},
		})
	case errors.Is(err, ErrNotFound):
		respond.NotFound(c, "analysis not found")
	case errors.Is(err, extract.ErrNoText),
		errors.Is(err, extract.ErrUnsupportedType),
		errors.Is(err, extract.ErrOCRNotConfigured),
		errors.Is(err, extract.ErrEmptyFile):
		extract.RespondError(c, err)
	default:
		respond.Internal(c, "failed to analyze resume", err)
	}
}
