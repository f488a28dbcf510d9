package bootstrap

import (
	"github.com/gin-gonic/gin"

	"resume-agent/internal/chat"
	"resume-agent/internal/jobs"
	"resume-agent/internal/llm"
	"resume-agent/internal/llm/gemini"
	"resume-agent/internal/resume"
	"resume-agent/internal/search"
	"resume-agent/internal/shared/config"
	"resume-agent/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine

	LLM      llm.Client
	Search   search.Client
	Skills   *resume.SkillStore
	Sessions *chat.SessionStore

	ResumeService *resume.Service
	JobsService   *jobs.Service
	ChatService   *chat.Service

	ResumeHandler *resume.Handler
	JobsHandler   *jobs.Handler
	ChatHandler   *chat.Handler
}

// Build constructs the app against the real Gemini and Tavily providers.
func Build(cfg config.Config) (*App, error) {
	gem, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)
	if err != nil {
		return nil, err
	}
	tavily, err := search.NewTavilyClient(cfg.TavilyAPIKey, cfg.TavilyBaseURL, cfg.SearchTimeout)
	if err != nil {
		return nil, err
	}
	return BuildWithProviders(cfg, llm.WithRetry(gem), tavily), nil
}

// BuildWithProviders wires services and routes around the given provider
// clients. Tests use it to inject fakes.
func BuildWithProviders(cfg config.Config, llmClient llm.Client, searchClient search.Client) *App {
	skills := resume.NewSkillStore()
	sessions := chat.NewSessionStore()
	synth := &jobs.Synthesizer{LLM: llmClient}

	resumeSvc := &resume.Service{LLM: llmClient, Skills: skills}
	jobsSvc := &jobs.Service{Skills: skills, Search: searchClient, Synth: synth}
	chatSvc := &chat.Service{
		Skills:   skills,
		Search:   searchClient,
		Synth:    synth,
		LLM:      llmClient,
		Sessions: sessions,
	}

	app := &App{
		Config:        cfg,
		LLM:           llmClient,
		Search:        searchClient,
		Skills:        skills,
		Sessions:      sessions,
		ResumeService: resumeSvc,
		JobsService:   jobsSvc,
		ChatService:   chatSvc,
		ResumeHandler: resume.NewHandler(resumeSvc),
		JobsHandler:   jobs.NewHandler(jobsSvc),
		ChatHandler:   chat.NewHandler(chatSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: app.ResumeHandler,
		JobsHandler:   app.JobsHandler,
		ChatHandler:   app.ChatHandler,
	})

	return app
}
