package interview

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the interview service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

type questionRequest struct {
	Difficulty string `json:"difficulty"`
	Language   string `json:"language"`
}

type clarifyRequest struct {
	Question string `json:"question"`
}

type evaluateRequest struct {
	Code string `json:"code"`
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/interview")
	g.GET("/languages", h.languages)
	g.POST("/questions", h.newQuestion)
	g.GET("/sessions/:id", h.getSession)
	g.POST("/sessions/:id/clarify", h.clarify)
	g.POST("/sessions/:id/evaluate", h.evaluate)
}

func (h *Handler) languages(c *gin.Context) {
	out := make([]gin.H, 0, len(Languages))
	for _, l := range Languages {
		t, _ := Template(l)
		out = append(out, gin.H{"language": l, "template": t})
	}
	respond.OK(c, gin.H{"languages": out, "default": DefaultLanguage})
}

func (h *Handler) newQuestion(c *gin.Context) {
	var req questionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.InvalidBody(c)
			return
		}
	}
	session, err := h.Svc.NewQuestion(c.Request.Context(), req.Difficulty, req.Language)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("sessionId", session.ID)
	respond.Created(c, h.sessionView(session))
}

func (h *Handler) getSession(c *gin.Context) {
	c.Set("sessionId", c.Param("id"))
	session, err := h.Svc.Session(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, h.sessionView(session))
}

func (h *Handler) clarify(c *gin.Context) {
	sessionID := c.Param("id")
	c.Set("sessionId", sessionID)
	var req clarifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidBody(c)
		return
	}
	reply, err := h.Svc.Clarify(c.Request.Context(), sessionID, req.Question)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, gin.H{"sessionId": sessionID, "reply": reply})
}

func (h *Handler) evaluate(c *gin.Context) {
	sessionID := c.Param("id")
	c.Set("sessionId", sessionID)
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidBody(c)
		return
	}
	eval, err := h.Svc.Evaluate(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, eval)
}

func (h *Handler) sessionView(s Session) gin.H {
	return gin.H{
		"id":          s.ID,
		"difficulty":  s.Difficulty,
		"language":    s.Language,
		"template":    s.Template,
		"question":    s.Question,
		"startedAt":   s.StartedAt,
		"deadline":    s.Deadline,
		"remainingMs": s.Remaining(h.Svc.now()).Milliseconds(),
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDifficulty), errors.Is(err, ErrInvalidLanguage):
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error(), nil)
	case errors.Is(err, ErrEmptyQuestion), errors.Is(err, ErrEmptyCode):
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error(), nil)
	case errors.Is(err, ErrSessionNotFound):
		respond.NotFound(c, "interview session not found")
	case errors.Is(err, ErrChatNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, ErrorCodeChatUnavailable, "AI chat is not configured", nil)
	case errors.Is(err, ErrGenerationFailed):
		var schemaErr *SchemaError
		var details any
		if errors.As(err, &schemaErr) {
			details = schemaErr.Errors
		}
		respond.Error(c, http.StatusBadGateway, ErrorCodeGenerationFailed, "Failed to generate a response. Please try again.", details)
	default:
		respond.Internal(c, "interview request failed", err)
	}
}
