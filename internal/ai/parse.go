package ai

import (
	"encoding/json"
	"strings"
)

// Suggestion is one routine tip from the coach.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

const maxSteps = 5

// ParseSteps decodes a JSON array of step strings. Models sometimes wrap
// the payload in markdown fences despite instructions, so those are
// stripped first. Malformed input yields nil.
func ParseSteps(raw string) []string {
	var steps []string
	if err := json.Unmarshal([]byte(stripFences(raw)), &steps); err != nil {
		return nil
	}

	out := make([]string, 0, len(steps))
	for _, s := range steps {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxSteps {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseSuggestions decodes {"suggestions": [...]}; a bare array is also
// accepted. Malformed input yields the fallback set.
func ParseSuggestions(raw string) []Suggestion {
	cleaned := stripFences(raw)

	var wrapped struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && len(wrapped.Suggestions) > 0 {
		return trimSuggestions(wrapped.Suggestions)
	}

	var bare []Suggestion
	if err := json.Unmarshal([]byte(cleaned), &bare); err == nil && len(bare) > 0 {
		return trimSuggestions(bare)
	}

	return FallbackSuggestions()
}

// FallbackSuggestions is served whenever the model is unreachable or
// returns garbage.
func FallbackSuggestions() []Suggestion {
	return []Suggestion{
		{Title: "Hydrate", Description: "Drink a glass of water before your next task."},
		{Title: "Move for two minutes", Description: "Stand up and stretch to reset your focus."},
		{Title: "Pick the smallest task", Description: "Finish one tiny pending item to build momentum."},
	}
}

func trimSuggestions(in []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(in))
	for _, s := range in {
		s.Title = strings.TrimSpace(s.Title)
		s.Description = strings.TrimSpace(s.Description)
		if s.Title == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return FallbackSuggestions()
	}
	return out
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
