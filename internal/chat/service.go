package chat

import (
	"context"
	"errors"
	"fmt"

	"resume-agent/internal/jobs"
	"resume-agent/internal/llm"
	"resume-agent/internal/resume"
	"resume-agent/internal/search"
	"resume-agent/internal/shared/telemetry"
)

// Service runs a chat turn: plan whether a job search is needed, execute the
// search conditionally, synthesize the reply and record both turns in the
// session.
type Service struct {
	Skills   *resume.SkillStore
	Search   search.Client
	Synth    *jobs.Synthesizer
	LLM      llm.Client
	Sessions *SessionStore
}

// Reply is the chat turn result returned to the handler.
type Reply struct {
	Text            string
	Recommendations []jobs.Recommendation
	SessionID       string
}

// Respond handles one user message. It fails fast when no skills are cached;
// a planner response that is not valid JSON degrades to a direct answer; a
// forbidden search result degrades to synthesis without search context.
func (s *Service) Respond(ctx context.Context, message, sessionID string) (Reply, error) {
	skills := s.Skills.Get()
	if len(skills) == 0 {
		return Reply{}, resume.ErrNoSkills
	}

	id, _ := s.Sessions.GetOrCreate(sessionID)

	rawPlan, err := s.LLM.Generate(ctx, llm.Request{Prompt: buildPlanPrompt(message, skills)})
	if err != nil {
		return Reply{}, err
	}
	plan := parsePlan(rawPlan)

	var reply jobs.ChatReply
	if plan.Tool == toolSearchJobs {
		reply, err = s.respondWithSearch(ctx, message, skills, plan.Query)
	} else {
		reply, err = s.Synth.ChatDirect(ctx, message, skills)
	}
	if err != nil {
		return Reply{}, err
	}

	s.Sessions.Append(id,
		Turn{Role: "user", Content: message},
		Turn{Role: "assistant", Content: reply.Text},
	)

	return Reply{
		Text:            reply.Text,
		Recommendations: reply.Recommendations,
		SessionID:       id,
	}, nil
}

func (s *Service) respondWithSearch(ctx context.Context, message string, skills []string, extraQuery string) (jobs.ChatReply, error) {
	terms := skills
	if extraQuery != "" {
		terms = append(append([]string{}, skills...), extraQuery)
	}

	payload, err := s.Search.SearchJobs(ctx, terms)
	if err != nil {
		if !errors.Is(err, search.ErrForbidden) {
			return jobs.ChatReply{}, fmt.Errorf("%w: %v", jobs.ErrSearchFailed, err)
		}
		// Credential failure: answer without search context instead of
		// failing the turn.
		telemetry.Warn("chat.search.forbidden", map[string]any{"err": err.Error()})
		payload = nil
	}

	return s.Synth.ChatWithSearch(ctx, message, skills, payload)
}
