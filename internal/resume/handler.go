package resume

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-agent/internal/llm"
	"resume-agent/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
	rg.GET("/skills", h.skills)
}

func (h *Handler) extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	parsed, err := h.Svc.Extract(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, llm.ErrTimeout) {
			respond.Error(c, http.StatusGatewayTimeout, "llm_timeout", "resume extraction timed out", err.Error())
			return
		}
		respond.Error(c, http.StatusBadRequest, "extraction_failed", "failed to extract resume", err.Error())
		return
	}

	respond.OK(c, parsed)
}

func (h *Handler) skills(c *gin.Context) {
	respond.OK(c, gin.H{"skills": h.Svc.Skills.Get()})
}
