package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"resume-agent/internal/extract"
	"resume-agent/internal/llm"
)

const extractionInstruction = "Parse the following resume into the schema fields (name, skills[], experience[{company, role, duration, description}], " +
	"education[{institution, degree, year}]). Return valid JSON only. For skills, return concise skill keywords.\n\n" +
	"Resume:\n"

// Service turns uploaded bytes into structured resume data and caches the
// extracted skills.
type Service struct {
	LLM    llm.Client
	Skills *SkillStore
}

// Extract pulls text from the payload, asks the model for structured fields
// and records the skill list. Model and parse failures are returned to the
// caller; nothing is retried here.
func (s *Service) Extract(ctx context.Context, data []byte) (ResumeData, error) {
	text := extract.Text(data)

	raw, err := s.LLM.Generate(ctx, llm.Request{
		Prompt: extractionInstruction + text,
		Schema: Schema,
	})
	if err != nil {
		return ResumeData{}, err
	}

	var parsed ResumeData
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &parsed); err != nil {
		return ResumeData{}, fmt.Errorf("resume extraction returned invalid JSON: %w", err)
	}

	s.Skills.Set(parsed.Skills)
	return parsed, nil
}
