package jobs

import (
	"encoding/json"
	"fmt"
)

func searchPrompt(skills []string, payload json.RawMessage) string {
	return fmt.Sprintf(
		"You are a helpful job assistant. Given the user's skills and search results, "+
			"recommend 5 roles with short reasons and include links if available.\n\n"+
			"User skills: %s\n\n"+
			"Search results: %s\n\n"+
			"Return JSON with fields: recommendations: [{title, company?, link?, reason}].",
		marshalSkills(skills), string(payload))
}

func skillsOnlyPrompt(skills []string) string {
	return fmt.Sprintf(
		"Recommend 5 job roles for the user based on these skills. "+
			"For each, include a short reason. Return JSON: recommendations: [{title, reason}].\n\n"+
			"User skills: %s",
		marshalSkills(skills))
}

func chatSearchPrompt(message string, skills []string, payload json.RawMessage) string {
	results := "unavailable"
	if payload != nil {
		results = string(payload)
	}
	return fmt.Sprintf(
		"Chat with the user and suggest concrete job leads. Be concise and friendly.\n"+
			"User message: %s\n"+
			"User skills: %s\n"+
			"Search results: %s\n\n"+
			"Return JSON only with: {\"text\": string, \"recommendations\": [{title, company?, link?, reason}]}. "+
			"Ensure recommendations is a list of 5 items and keep reasons short.",
		message, marshalSkills(skills), results)
}

func chatDirectPrompt(message string, skills []string) string {
	return fmt.Sprintf(
		"Reply helpfully to the user about job search based on their skills.\n"+
			"User message: %s\n"+
			"User skills: %s\n\n"+
			"Return JSON only with: {\"text\": string, \"recommendations\": [{title, company?, link?, reason}]}. "+
			"Ensure recommendations is a list of up to 5 items and keep reasons short.",
		message, marshalSkills(skills))
}

func marshalSkills(skills []string) string {
	data, err := json.Marshal(skills)
	if err != nil {
		return "[]"
	}
	return string(data)
}
