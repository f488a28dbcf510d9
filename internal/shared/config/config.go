package config

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	GeminiModel     string
	GeminiAPIKey    string
	TavilyAPIKey    string
	TavilyBaseURL   string
	LLMTimeout      time.Duration
	SearchTimeout   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Missing provider credentials are fatal: the service cannot serve a single
// request without them.
func Load() Config {
	// Best-effort load of local and shared env files for dev convenience.
	loadEnvFiles()

	apiKey := resolveGeminiKey()
	if apiKey == "" {
		log.Fatal("no Gemini API key found; set GEMINI_API_KEY, GOOGLE_API_KEY or GENAI_API_KEY, or add it to .env, ../.env, ~/.config/gemini/.env or ~/.env")
	}

	tavilyKey := strings.TrimSpace(os.Getenv("TAVILY_API_KEY"))
	if tavilyKey == "" {
		log.Fatal("TAVILY_API_KEY is not set; add it to your .env or export it in your shell")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiAPIKey:    apiKey,
		TavilyAPIKey:    tavilyKey,
		TavilyBaseURL:   strings.TrimSpace(os.Getenv("TAVILY_BASE_URL")),
		LLMTimeout:      secondsEnv("LLM_TIMEOUT_SECONDS", 60*time.Second),
		SearchTimeout:   secondsEnv("SEARCH_TIMEOUT_SECONDS", 30*time.Second),
	}
}

// loadEnvFiles loads KEY=VALUE pairs from conventional locations without
// overriding variables already set in the environment.
func loadEnvFiles() {
	paths := []string{
		".env",
		filepath.Join("..", ".env"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "gemini", ".env"),
			filepath.Join(home, ".env"),
		)
	}
	for _, path := range paths {
		// godotenv.Load never overrides variables already set.
		_ = godotenv.Load(path)
	}
}

// resolveGeminiKey checks the conventional variable names used with the
// generative-language API, then falls back to an interactive prompt when
// running on a terminal.
func resolveGeminiKey() string {
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "GENAI_API_KEY"} {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key
		}
	}
	return promptForKey()
}

func promptForKey() string {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return ""
	}
	fmt.Fprint(os.Stderr, "Enter Gemini API Key: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func secondsEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
