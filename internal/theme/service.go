package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI client the service needs.
// *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Service struct {
	client ChatCompleter
	now    func() time.Time
}

func NewService(client ChatCompleter) *Service {
	return &Service{client: client, now: time.Now}
}

const promptTemplate = `Create a custom theme for a stamp collection platform based on these requirements:
- Category: %s
- Country: %s
- Mood: %s
- Colors: %s
- Inspiration: %s
- Target Audience: %s

Generate a theme configuration with a creative name, a description, a color
palette (primary, secondary, accent, background, surface, text colors) and
tags for categorization. Return a single JSON object with keys name,
description, colors and tags. Respond with JSON only.`

// aiReply is the shape we try to parse out of the model's text.
type aiReply struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Colors      *Colors  `json:"colors"`
	Tags        []string `json:"tags"`
}

// Generate asks the model for a theme and falls back to a deterministic
// country-color theme when the model call or its JSON cannot be used.
func (s *Service) Generate(ctx context.Context, userID int, p Prompt) (Theme, error) {
	country := p.Country
	if country == "" {
		country = "Global"
	}
	colors := "Any"
	if len(p.Colors) > 0 {
		colors = strings.Join(p.Colors, ", ")
	}

	text, err := s.complete(ctx, fmt.Sprintf(promptTemplate,
		p.Category, country, p.Mood, colors, p.Inspiration, p.TargetAudience))

	var reply aiReply
	if err != nil {
		slog.Warn("theme generation falling back", "error", err)
	} else if jsonErr := json.Unmarshal([]byte(extractJSON(text)), &reply); jsonErr != nil {
		slog.Warn("theme reply was not valid JSON, falling back", "error", jsonErr)
	}

	t := Theme{
		ID:            "ai-" + uuid.NewString(),
		Name:          reply.Name,
		Description:   reply.Description,
		Category:      p.Category,
		Country:       p.Country,
		Tags:          reply.Tags,
		IsAIGenerated: true,
		CreatedBy:     strconv.Itoa(userID),
		CreatedAt:     s.now().UTC(),
	}
	if t.Name == "" {
		t.Name = fmt.Sprintf("%s %s Theme", country, p.Category)
	}
	if t.Description == "" {
		t.Description = fmt.Sprintf("A %s theme inspired by %s", p.Mood, p.Inspiration)
	}
	if reply.Colors != nil && reply.Colors.Primary != "" {
		t.Colors = *reply.Colors
	} else {
		t.Colors = fallbackColors(strings.ToLower(p.Country))
	}
	if len(t.Tags) == 0 {
		t.Tags = append([]string{p.Category, p.Mood}, p.Colors...)
	}
	return t, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("theme generation is not configured")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// extractJSON strips markdown code fences some models wrap around JSON.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if after, ok := strings.CutPrefix(text, "```json"); ok {
		text = after
	} else if after, ok := strings.CutPrefix(text, "```"); ok {
		text = after
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
