// Package story turns a game record into narrative text and quizzes through
// a chat-completion model.
package story

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/logging"
	"mlb-storyteller-service/internal/quiz"
)

// Narrative styles accepted by GenerateStory. Anything else falls back to
// StyleDramatic.
const (
	StyleDramatic   = "dramatic"
	StyleAnalytical = "analytical"
	StyleHumorous   = "humorous"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 30 * time.Second
)

// Config holds the generator configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger

	// Client overrides the chat backend, used by tests.
	Client ChatClient
}

// ChatClient is the chat-completion seam, satisfied by *openai.Client.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Preferences personalizes a generated story.
type Preferences struct {
	FavoriteTeam    string   `json:"favorite_team,omitempty"`
	FavoritePlayers []string `json:"favorite_players,omitempty"`
	Style           string   `json:"style,omitempty"`
}

// Generator produces stories and quizzes for a single configured model.
type Generator struct {
	client  ChatClient
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGenerator builds a Generator. With no override client it speaks to the
// configured OpenAI-compatible endpoint.
func NewGenerator(cfg Config) *Generator {
	client := cfg.Client
	if client == nil {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientConfig)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Generator{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  cfg.Logger,
	}
}

// GenerateStory returns a narrative for the game shaped by the fan's
// preferences.
func (g *Generator) GenerateStory(ctx context.Context, record domain.GameRecord, prefs Preferences) (string, error) {
	prompt := buildStoryPrompt(record, prefs)

	start := time.Now()
	text, err := g.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate story for game %d: %w", record.Summary.GamePk, err)
	}

	logging.Info(g.logger, "story generated",
		logging.FieldGamePk, record.Summary.GamePk,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return text, nil
}

// GenerateQuiz asks the model for a quiz about the game and validates the
// response. Model output that fails validation surfaces as *quiz.ParseError.
func (g *Generator) GenerateQuiz(ctx context.Context, record domain.GameRecord) (quiz.Quiz, error) {
	prompt := buildQuizPrompt(record)

	text, err := g.complete(ctx, prompt)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("generate quiz for game %d: %w", record.Summary.GamePk, err)
	}

	parsed, err := quiz.ParseQuiz(text)
	if err != nil {
		logging.Warn(g.logger, "quiz output rejected",
			logging.FieldGamePk, record.Summary.GamePk,
			"error", err,
		)
		return quiz.Quiz{}, err
	}
	return parsed, nil
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty chat response")
	}
	return resp.Choices[0].Message.Content, nil
}
