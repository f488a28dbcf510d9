package jobs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-agent/internal/llm"
	"resume-agent/internal/resume"
	"resume-agent/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.jobs)
}

func (h *Handler) jobs(c *gin.Context) {
	out, err := h.Svc.Recommend(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrNoSkills):
			respond.Error(c, http.StatusBadRequest, "no_skills", "No skills found. Upload a resume first.", nil)
		case errors.Is(err, llm.ErrTimeout):
			respond.Error(c, http.StatusGatewayTimeout, "llm_timeout", "recommendation synthesis timed out", err.Error())
		case errors.Is(err, ErrSearchFailed):
			respond.Error(c, http.StatusBadGateway, "search_error", "job search failed", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build recommendations", err.Error())
		}
		return
	}

	switch {
	case out.Degraded && out.Text != "":
		respond.OK(c, gin.H{"skills": out.Skills, "text": out.Text})
	case out.Degraded:
		respond.OK(c, gin.H{"skills": out.Skills, "recommendations": out.Recommendations})
	case out.Text != "":
		respond.OK(c, gin.H{"skills": out.Skills, "search": out.Search, "text": out.Text})
	default:
		respond.OK(c, gin.H{"recommendations": out.Recommendations})
	}
}
