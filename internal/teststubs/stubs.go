// Package teststubs holds shared test doubles for the service seams.
package teststubs

import (
	"context"
	"sync/atomic"

	openai "github.com/sashabaranov/go-openai"

	"mlb-storyteller-service/internal/providers/statsapi"
	"mlb-storyteller-service/internal/speech"
)

// StubProvider is a scripted test double for the games.Provider contract.
// Each method returns its configured response and error while counting calls.
type StubProvider struct {
	Feed        statsapi.FeedResponse
	FeedErr     error
	Content     statsapi.ContentResponse
	ContentErr  error
	Sched       statsapi.ScheduleResponse
	SchedErr    error
	GameSched   statsapi.ScheduleResponse
	GameSchedEr error
	RosterResp  statsapi.RosterResponse
	RosterErr   error
	People      statsapi.PeopleResponse
	PeopleErr   error

	FeedCalls    atomic.Int32
	ContentCalls atomic.Int32
	SchedCalls   atomic.Int32
	RosterCalls  atomic.Int32
	PeopleCalls  atomic.Int32
}

func (s *StubProvider) GameFeed(ctx context.Context, gamePk string) (statsapi.FeedResponse, error) {
	_ = ctx
	_ = gamePk
	s.FeedCalls.Add(1)
	return s.Feed, s.FeedErr
}

func (s *StubProvider) GameContent(ctx context.Context, gamePk string) (statsapi.ContentResponse, error) {
	_ = ctx
	_ = gamePk
	s.ContentCalls.Add(1)
	return s.Content, s.ContentErr
}

func (s *StubProvider) Schedule(ctx context.Context, season int, gameType string) (statsapi.ScheduleResponse, error) {
	_ = ctx
	_ = season
	_ = gameType
	s.SchedCalls.Add(1)
	return s.Sched, s.SchedErr
}

func (s *StubProvider) ScheduleForGame(ctx context.Context, gamePk string) (statsapi.ScheduleResponse, error) {
	_ = ctx
	_ = gamePk
	return s.GameSched, s.GameSchedEr
}

func (s *StubProvider) Roster(ctx context.Context, teamID string, season int) (statsapi.RosterResponse, error) {
	_ = ctx
	_ = teamID
	_ = season
	s.RosterCalls.Add(1)
	return s.RosterResp, s.RosterErr
}

func (s *StubProvider) Player(ctx context.Context, playerID string, season int) (statsapi.PeopleResponse, error) {
	_ = ctx
	_ = playerID
	_ = season
	s.PeopleCalls.Add(1)
	return s.People, s.PeopleErr
}

// StubChatClient is a test double for story.ChatClient. Responses are
// consumed in order; when exhausted the last one repeats.
type StubChatClient struct {
	Responses []string
	Err       error
	Requests  []openai.ChatCompletionRequest

	next int
}

func (s *StubChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	_ = ctx
	s.Requests = append(s.Requests, req)
	if s.Err != nil {
		return openai.ChatCompletionResponse{}, s.Err
	}
	if len(s.Responses) == 0 {
		return openai.ChatCompletionResponse{}, nil
	}
	idx := s.next
	if idx >= len(s.Responses) {
		idx = len(s.Responses) - 1
	}
	s.next++
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: s.Responses[idx]}},
		},
	}, nil
}

// StubSynthesizer is a test double for speech.Synthesizer that records the
// chunks it was asked to speak.
type StubSynthesizer struct {
	Chunks    []string
	Err       error
	VoiceList []speech.Voice

	// Audio maps chunk text to the bytes to return; unmapped chunks yield
	// the chunk text itself as bytes.
	Audio map[string][]byte
}

func (s *StubSynthesizer) Synthesize(ctx context.Context, text string, params speech.VoiceParams) ([]byte, error) {
	_ = ctx
	_ = params
	if s.Err != nil {
		return nil, s.Err
	}
	s.Chunks = append(s.Chunks, text)
	if audio, ok := s.Audio[text]; ok {
		return audio, nil
	}
	return []byte(text), nil
}

func (s *StubSynthesizer) Voices(ctx context.Context, languageCode string) ([]speech.Voice, error) {
	_ = ctx
	_ = languageCode
	if s.Err != nil {
		return nil, s.Err
	}
	return s.VoiceList, nil
}
