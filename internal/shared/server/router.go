package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-agent/internal/chat"
	"resume-agent/internal/jobs"
	"resume-agent/internal/resume"
	"resume-agent/internal/shared/config"
	"resume-agent/internal/shared/server/middleware"
	"resume-agent/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resume.Handler
	JobsHandler   *jobs.Handler
	ChatHandler   *chat.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	root := &r.RouterGroup
	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})
	deps.ResumeHandler.RegisterRoutes(root)
	deps.JobsHandler.RegisterRoutes(root)
	deps.ChatHandler.RegisterRoutes(root)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
