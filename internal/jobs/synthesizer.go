package jobs

import (
	"context"
	"encoding/json"

	"resume-agent/internal/llm"
)

// Synthesizer turns skills and optional search results into recommendation
// lists via the generative model. Unparseable model output degrades to the
// raw text instead of failing, so callers never lose the produced content.
type Synthesizer struct {
	LLM llm.Client
}

// FromSearch synthesizes recommendations from skills plus a search payload.
func (s *Synthesizer) FromSearch(ctx context.Context, skills []string, payload json.RawMessage) (Result, error) {
	raw, err := s.LLM.Generate(ctx, llm.Request{
		Prompt: searchPrompt(skills, payload),
		Schema: recommendationsSchema,
	})
	if err != nil {
		return Result{}, err
	}
	return parseResult(raw), nil
}

// FromSkills synthesizes recommendations from skills alone. Used when the
// search provider signaled a credential failure.
func (s *Synthesizer) FromSkills(ctx context.Context, skills []string) (Result, error) {
	raw, err := s.LLM.Generate(ctx, llm.Request{
		Prompt: skillsOnlyPrompt(skills),
		Schema: recommendationsSchema,
	})
	if err != nil {
		return Result{}, err
	}
	return parseResult(raw), nil
}

// ChatWithSearch synthesizes a chat reply with search context. A nil payload
// tells the model the search results were unavailable.
func (s *Synthesizer) ChatWithSearch(ctx context.Context, message string, skills []string, payload json.RawMessage) (ChatReply, error) {
	raw, err := s.LLM.Generate(ctx, llm.Request{
		Prompt: chatSearchPrompt(message, skills, payload),
		Schema: chatSchema,
	})
	if err != nil {
		return ChatReply{}, err
	}
	return parseChatReply(raw), nil
}

// ChatDirect synthesizes a chat reply from the message and skills only.
func (s *Synthesizer) ChatDirect(ctx context.Context, message string, skills []string) (ChatReply, error) {
	raw, err := s.LLM.Generate(ctx, llm.Request{
		Prompt: chatDirectPrompt(message, skills),
		Schema: chatSchema,
	})
	if err != nil {
		return ChatReply{}, err
	}
	return parseChatReply(raw), nil
}

func parseResult(raw string) Result {
	var parsed struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	clean := llm.StripFences(raw)
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return Result{Raw: raw}
	}
	return Result{Recommendations: capRecommendations(parsed.Recommendations)}
}

func parseChatReply(raw string) ChatReply {
	var parsed ChatReply
	clean := llm.StripFences(raw)
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return ChatReply{Text: raw}
	}
	parsed.Recommendations = capRecommendations(parsed.Recommendations)
	return parsed
}

func capRecommendations(recs []Recommendation) []Recommendation {
	if len(recs) > maxRecommendations {
		return recs[:maxRecommendations]
	}
	return recs
}
