package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-agent/internal/resume"
	"resume-agent/internal/search"
	"resume-agent/internal/shared/telemetry"
)

// ErrSearchFailed wraps a non-credential search failure so handlers can map
// it to an upstream error status.
var ErrSearchFailed = errors.New("job search failed")

// Service orchestrates the /jobs flow: search for openings matching the
// cached skills, then synthesize recommendations, degrading to a skills-only
// synthesis when the search provider rejects its credentials.
type Service struct {
	Skills *resume.SkillStore
	Search search.Client
	Synth  *Synthesizer
}

// Outcome is the /jobs result in one of its shapes. Degraded marks the
// credential-fallback path; Text is set when the model output failed to
// parse; Search echoes the raw payload on the unparsed full path.
type Outcome struct {
	Skills          []string
	Search          json.RawMessage
	Recommendations []Recommendation
	Text            string
	Degraded        bool
}

// Recommend runs the flow. It fails fast when no skills are cached.
func (s *Service) Recommend(ctx context.Context) (Outcome, error) {
	skills := s.Skills.Get()
	if len(skills) == 0 {
		return Outcome{}, resume.ErrNoSkills
	}

	payload, err := s.Search.SearchJobs(ctx, skills)
	if err != nil {
		if !errors.Is(err, search.ErrForbidden) {
			return Outcome{}, fmt.Errorf("%w: %v", ErrSearchFailed, err)
		}
		// Invalid or missing search credentials: recommend from skills alone
		// instead of failing the request.
		telemetry.Warn("jobs.search.forbidden", map[string]any{"err": err.Error()})
		res, err := s.Synth.FromSkills(ctx, skills)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Skills:          skills,
			Recommendations: res.Recommendations,
			Text:            res.Raw,
			Degraded:        true,
		}, nil
	}

	res, err := s.Synth.FromSearch(ctx, skills, payload)
	if err != nil {
		return Outcome{}, err
	}
	if res.IsRaw() {
		return Outcome{Skills: skills, Search: payload, Text: res.Raw}, nil
	}
	return Outcome{Recommendations: res.Recommendations}, nil
}
