package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-agent/internal/bootstrap"
	"resume-agent/internal/llm"
	"resume-agent/internal/search"
	"resume-agent/internal/shared/config"
)

type fakeLLM struct {
	responses []string
	err       error
	requests  []llm.Request
}

func (f *fakeLLM) Generate(ctx context.Context, req llm.Request) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("no scripted response")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

type fakeSearch struct {
	payload json.RawMessage
	err     error
	calls   [][]string
}

func (f *fakeSearch) SearchJobs(ctx context.Context, skills []string) (json.RawMessage, error) {
	f.calls = append(f.calls, skills)
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

var _ search.Client = (*fakeSearch)(nil)

func buildApp(llmClient llm.Client, searchClient search.Client, skills []string) *bootstrap.App {
	gin.SetMode(gin.TestMode)
	app := bootstrap.BuildWithProviders(config.Config{Port: "0", Env: "dev"}, llmClient, searchClient)
	if skills != nil {
		app.Skills.Set(skills)
	}
	return app
}

func getJobs(t *testing.T, router *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestJobsWithoutSkillsIs400(t *testing.T) {
	app := buildApp(&fakeLLM{}, &fakeSearch{}, nil)

	resp := getJobs(t, app.Router)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "no_skills" {
		t.Fatalf("expected no_skills, got %q", envelope.Error.Code)
	}
}

func TestJobsFullPath(t *testing.T) {
	mock := &fakeLLM{responses: []string{
		`{"recommendations":[{"title":"Backend Engineer","company":"Acme","link":"https://example.com","reason":"matches go"}]}`,
	}}
	searchMock := &fakeSearch{payload: json.RawMessage(`{"results":[{"title":"Backend Engineer"}]}`)}
	app := buildApp(mock, searchMock, []string{"go", "sql"})

	resp := getJobs(t, app.Router)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Recommendations []struct {
			Title string `json:"title"`
		} `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Recommendations) != 1 || body.Recommendations[0].Title != "Backend Engineer" {
		t.Fatalf("unexpected recommendations %+v", body.Recommendations)
	}
	if len(searchMock.calls) != 1 {
		t.Fatalf("expected one search call, got %d", len(searchMock.calls))
	}
}

func TestJobsForbiddenSearchFallsBackToSkillsOnly(t *testing.T) {
	mock := &fakeLLM{responses: []string{
		`{"recommendations":[{"title":"Data Engineer","reason":"sql"},{"title":"Backend Engineer","reason":"go"}]}`,
	}}
	searchMock := &fakeSearch{err: fmt.Errorf("%w (http status 403)", search.ErrForbidden)}
	app := buildApp(mock, searchMock, []string{"go", "sql"})

	resp := getJobs(t, app.Router)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected fallback 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Skills          []string `json:"skills"`
		Recommendations []struct {
			Title string `json:"title"`
		} `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Skills) != 2 {
		t.Fatalf("expected skills echoed in fallback, got %v", body.Skills)
	}
	if len(body.Recommendations) == 0 || len(body.Recommendations) > 5 {
		t.Fatalf("expected 1..5 recommendations, got %d", len(body.Recommendations))
	}
}

func TestJobsRecommendationsCappedAtFive(t *testing.T) {
	recs := `{"recommendations":[` +
		`{"title":"a","reason":"r"},{"title":"b","reason":"r"},{"title":"c","reason":"r"},` +
		`{"title":"d","reason":"r"},{"title":"e","reason":"r"},{"title":"f","reason":"r"}]}`
	mock := &fakeLLM{responses: []string{recs}}
	app := buildApp(mock, &fakeSearch{payload: json.RawMessage(`{}`)}, []string{"go"})

	resp := getJobs(t, app.Router)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Recommendations []json.RawMessage `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Recommendations) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(body.Recommendations))
	}
}

func TestJobsSearchOutageIs502(t *testing.T) {
	searchMock := &fakeSearch{err: errors.New("tavily http status 500: boom")}
	app := buildApp(&fakeLLM{}, searchMock, []string{"go"})

	resp := getJobs(t, app.Router)
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
}

func TestJobsUnparseableModelOutputKeepsRawText(t *testing.T) {
	mock := &fakeLLM{responses: []string{"Here are some great roles for you!"}}
	app := buildApp(mock, &fakeSearch{payload: json.RawMessage(`{"results":[]}`)}, []string{"go"})

	resp := getJobs(t, app.Router)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Skills []string        `json:"skills"`
		Search json.RawMessage `json:"search"`
		Text   string          `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Text != "Here are some great roles for you!" {
		t.Fatalf("expected raw text preserved, got %q", body.Text)
	}
	if len(body.Skills) == 0 || body.Search == nil {
		t.Fatalf("expected skills and search context alongside raw text, got %s", resp.Body.String())
	}
}
