package chat

import (
	"encoding/json"
	"fmt"

	"resume-agent/internal/llm"
)

const toolSearchJobs = "search_jobs"

// Plan is the planner's transient decision: either run the job-search tool
// with extra query terms, or answer directly. Output that fails to parse as
// JSON is treated as a direct answer carrying the raw text.
type Plan struct {
	Tool   string `json:"tool"`
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

func buildPlanPrompt(message string, skills []string) string {
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		skillsJSON = []byte("[]")
	}
	return fmt.Sprintf(
		"You are an assistant that decides if a web job search is needed.\n"+
			"User message: %s\n"+
			"Known user skills: %s\n\n"+
			"If search will improve the answer, return ONLY JSON like: {\"tool\":\"search_jobs\", \"query\": \"extra keywords if any\"}.\n"+
			"Otherwise return ONLY JSON like: {\"answer\": \"short helpful reply\"}.\n"+
			"No prose. JSON only.",
		message, skillsJSON)
}

func parsePlan(raw string) Plan {
	var plan Plan
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &plan); err != nil {
		return Plan{Answer: raw}
	}
	return plan
}
