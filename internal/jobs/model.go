package jobs

import "encoding/json"

// maxRecommendations caps every synthesized recommendation list.
const maxRecommendations = 5

// Recommendation is one suggested role.
type Recommendation struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
	Link    string `json:"link,omitempty"`
	Reason  string `json:"reason"`
}

// Result is the tagged outcome of a synthesis call: either a parsed
// recommendation list or the model's raw text when its output was not valid
// JSON. Exactly one side is populated.
type Result struct {
	Recommendations []Recommendation
	Raw             string
}

// IsRaw reports whether the model output failed to parse.
func (r Result) IsRaw() bool { return r.Raw != "" }

// ChatReply is the synthesized chat answer. When the model output fails to
// parse, Text carries the raw response and Recommendations is empty.
type ChatReply struct {
	Text            string           `json:"text"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// recommendationsSchema constrains the /jobs synthesis output.
var recommendationsSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "recommendations": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "title": {"type": "STRING"},
          "company": {"type": "STRING"},
          "link": {"type": "STRING"},
          "reason": {"type": "STRING"}
        },
        "required": ["title", "reason"]
      }
    }
  },
  "required": ["recommendations"]
}`)

// chatSchema constrains the chat synthesis output.
var chatSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "text": {"type": "STRING"},
    "recommendations": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "title": {"type": "STRING"},
          "company": {"type": "STRING"},
          "link": {"type": "STRING"},
          "reason": {"type": "STRING"}
        },
        "required": ["title", "reason"]
      }
    }
  },
  "required": ["text"]
}`)
