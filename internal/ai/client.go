// Package ai wraps the Gemini collaborator used for task decomposition and
// coaching. Any malformed or empty response degrades to "no suggestion";
// nothing in here is allowed to crash a session.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"neurofocus/internal/storage"
)

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient dials Gemini. The API key comes from configuration
// (GEMINI_API_KEY); an empty key is an error the caller surfaces inline.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)

	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() {
	_ = c.client.Close()
}

// DecomposeTask splits a task title into 3-5 ordered micro-steps. A
// malformed response returns nil, never an error the caller must branch on.
func (c *Client) DecomposeTask(ctx context.Context, title string) []string {
	prompt := fmt.Sprintf(`Act as a productivity expert (GTD, behavioral science).
The user has a complex task: %q.

Break it into 3 to 5 actionable, logical, chronological micro-steps.
Steps must be short and direct, starting with a verb.

Return ONLY a JSON array of strings. Example: ["Open the document", "Write the intro", "Review the text"].
No markdown formatting.`, title)

	text, err := c.generateJSON(ctx, prompt)
	if err != nil {
		return nil
	}
	return ParseSteps(text)
}

// RoutineSuggestions asks for three short routine tips based on the user's
// completed and pending task titles. On any failure it returns the
// hardcoded fallback set.
func (c *Client) RoutineSuggestions(ctx context.Context, completed, pending []string) []Suggestion {
	prompt := fmt.Sprintf(`Act as a minimalist productivity and wellbeing coach.
Recently completed tasks: %s.
Pending tasks: %s.

Give 3 short, practical, gentle suggestions to improve the user's routine today.
Suggestions must be actionable.

Return ONLY a JSON object (no markdown code blocks) shaped as:
{"suggestions": [{"title": "Short title", "description": "One-sentence description"}]}`,
		orNone(completed), orNone(pending))

	text, err := c.generateJSON(ctx, prompt)
	if err != nil {
		return FallbackSuggestions()
	}
	return ParseSuggestions(text)
}

// Chat is an ongoing coaching conversation seeded with the user's profile
// and task context.
type Chat struct {
	session *genai.ChatSession
}

// NewCoachChat builds the system prompt from the profile and task lists and
// opens a chat session.
func (c *Client) NewCoachChat(profile storage.Profile, tasks []storage.Task) *Chat {
	var pending, done []string
	for _, t := range tasks {
		if t.IsCompleted {
			done = append(done, t.Title)
		} else {
			pending = append(pending, t.Title)
		}
	}

	name := profile.Username
	if name == "" {
		name = "Member"
	}
	bio := profile.Bio
	if bio == "" {
		bio = "Not set"
	}

	system := fmt.Sprintf(`You are Dr. Neuro, an AI assistant specialized in behavioral neuroscience, productivity and wellbeing.
Your mission is to help the user keep a mentally and physically healthy routine.

User profile:
- Name: %s
- Bio/mantra: %s
- Level: %d (XP: %d)
- Pending tasks today: %s
- Completed tasks today: %s

Guidelines:
1. Be empathetic and clear; ground advice in science (dopamine, circadian rhythm, focus) with accessible language.
2. Use the user's task context for practical advice.
3. Keep replies concise (at most 3 short paragraphs).
4. Keep a calm, encouraging, objective tone.`,
		name, bio, profile.Level, profile.CurrentXP, orNone(pending), orNone(done))

	model := *c.model
	model.ResponseMIMEType = ""
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	return &Chat{session: model.StartChat()}
}

// Send returns the coach's reply, or a canned line when the model comes
// back empty or broken.
func (ch *Chat) Send(ctx context.Context, message string) string {
	resp, err := ch.session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return fallbackChatLine
	}
	text := firstText(resp)
	if strings.TrimSpace(text) == "" {
		return fallbackChatLine
	}
	return text
}

const fallbackChatLine = "I could not reach my notes just now. Take a breath, pick one small task, and start there."

func (c *Client) generateJSON(ctx context.Context, prompt string) (string, error) {
	c.model.ResponseMIMEType = "application/json"
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return ""
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
