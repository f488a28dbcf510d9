package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-agent/internal/jobs"
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

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Text            string                `json:"text"`
	Recommendations []jobs.Recommendation `json:"recommendations,omitempty"`
	SessionID       string                `json:"session_id"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	reply, err := h.Svc.Respond(c.Request.Context(), req.Message, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrNoSkills):
			respond.Error(c, http.StatusBadRequest, "no_skills", "No skills found. Upload a resume first.", nil)
		case errors.Is(err, llm.ErrTimeout):
			respond.Error(c, http.StatusGatewayTimeout, "llm_timeout", "chat response timed out", err.Error())
		case errors.Is(err, jobs.ErrSearchFailed):
			respond.Error(c, http.StatusBadGateway, "search_error", "job search failed", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to answer", err.Error())
		}
		return
	}

	respond.OK(c, chatResponse{
		Text:            reply.Text,
		Recommendations: reply.Recommendations,
		SessionID:       reply.SessionID,
	})
}
