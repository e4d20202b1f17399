package ranking

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/extract"
	"career-backend/internal/shared/server/respond"
)

const maxBatchFiles = 20

// Handler wires HTTP handlers to the ranking service.
type Handler struct {
	Svc       *Service
	MaxUpload int64
}

// NewHandler constructs a Handler. maxUpload bounds each file.
func NewHandler(svc *Service, maxUpload int64) *Handler {
	return &Handler{Svc: svc, MaxUpload: maxUpload}
}

type jobDescriptionRequest struct {
	JobDescription string `json:"jobDescription"`
}

type outreachRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// RegisterRoutes attaches ranking routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/ranking")
	g.GET("/candidates", h.listCandidates)
	g.POST("/candidates", h.uploadCandidates)
	g.DELETE("/candidates", h.clearCandidates)
	g.DELETE("/candidates/:id", h.deleteCandidate)
	g.POST("/candidates/:id/toggle", h.toggleSelection)
	g.PUT("/job-description", h.setJobDescription)
	g.POST("/outreach", h.sendOutreach)
}

func (h *Handler) listCandidates(c *gin.Context) {
	col := h.Svc.Collection
	respond.OK(c, gin.H{
		"candidates":     col.List(),
		"selected":       col.SelectedIDs(),
		"jobDescription": col.JobDescription(),
	})
}

func (h *Handler) uploadCandidates(c *gin.Context) {
	if h.MaxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUpload*maxBatchFiles)
	}
	form, err := c.MultipartForm()
	if err != nil {
		extract.RespondUploadError(c, err)
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "at least one file is required", nil)
		return
	}
	if len(headers) > maxBatchFiles {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, fmt.Sprintf("at most %d files per upload", maxBatchFiles), nil)
		return
	}

	uploads := make([]extract.Upload, 0, len(headers))
	rejected := make([]FileFailure, 0)
	for _, fh := range headers {
		if h.MaxUpload > 0 && fh.Size > h.MaxUpload {
			rejected = append(rejected, FileFailure{FileName: fh.Filename, Code: "file_too_large", Message: "File exceeds the upload limit"})
			continue
		}
		upload, err := extract.ReadUpload(fh)
		if err != nil {
			rejected = append(rejected, FileFailure{FileName: fh.Filename, Code: extract.ErrorCode(err), Message: err.Error()})
			continue
		}
		uploads = append(uploads, upload)
	}

	jobDescription := ""
	if v := form.Value["jobDescription"]; len(v) > 0 {
		jobDescription = v[0]
	}

	result := BatchResult{Added: []Candidate{}}
	if len(uploads) > 0 {
		result, err = h.Svc.Ingest(c.Request.Context(), uploads, jobDescription)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			respond.Internal(c, "failed to ingest candidates", err)
			return
		}
	}
	result.Failures = append(rejected, result.Failures...)

	respond.OK(c, gin.H{
		"added":    result.Added,
		"failures": result.Failures,
		"total":    h.Svc.Collection.Len(),
	})
}

func (h *Handler) clearCandidates(c *gin.Context) {
	h.Svc.Collection.Clear()
	respond.NoContent(c)
}

func (h *Handler) deleteCandidate(c *gin.Context) {
	if err := h.Svc.Collection.Delete(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	respond.NoContent(c)
}

func (h *Handler) toggleSelection(c *gin.Context) {
	id := c.Param("id")
	selected, err := h.Svc.Collection.ToggleSelection(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, gin.H{"id": id, "selected": selected})
}

func (h *Handler) setJobDescription(c *gin.Context) {
	var req jobDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidBody(c)
		return
	}
	h.Svc.Collection.SetJobDescription(req.JobDescription)
	respond.OK(c, gin.H{"jobDescription": req.JobDescription})
}

func (h *Handler) sendOutreach(c *gin.Context) {
	var req outreachRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.InvalidBody(c)
			return
		}
	}
	result, err := h.Svc.SendOutreach(c.Request.Context(), req.Subject, req.Message)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.NotFound(c, "candidate not found")
	case errors.Is(err, ErrNoSelection):
		respond.Error(c, http.StatusBadRequest, ErrorCodeNoSelection, "Please select candidates to send emails", nil)
	default:
		respond.Internal(c, "ranking request failed", err)
	}
}
