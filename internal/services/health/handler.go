package health

import (
	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/respond"
)

// Handler exposes the status endpoint.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/status", h.status)
}

func (h *Handler) status(c *gin.Context) {
	respond.OK(c, h.Svc.Status())
}
