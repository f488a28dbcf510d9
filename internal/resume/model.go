package resume

import "encoding/json"

// ResumeData is the structured form of an uploaded resume. Produced once per
// upload and never mutated afterwards.
type ResumeData struct {
	Name       string           `json:"name"`
	Skills     []string         `json:"skills"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
}

// ExperienceItem is one work-history entry.
type ExperienceItem struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationItem is one education entry.
type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Schema is the response schema handed to the model for structured
// extraction. It is a plain JSON document so the contract with the provider
// stays decoupled from the Go types above.
var Schema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "name": {"type": "STRING"},
    "skills": {"type": "ARRAY", "items": {"type": "STRING"}},
    "experience": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "company": {"type": "STRING"},
          "role": {"type": "STRING"},
          "duration": {"type": "STRING"},
          "description": {"type": "STRING"}
        },
        "required": ["company", "role", "duration", "description"]
      }
    },
    "education": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "institution": {"type": "STRING"},
          "degree": {"type": "STRING"},
          "year": {"type": "STRING"}
        },
        "required": ["institution", "degree", "year"]
      }
    }
  },
  "required": ["name", "skills", "experience", "education"]
}`)
