package teststubs

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"mlb-storyteller-service/internal/providers/statsapi"
	"mlb-storyteller-service/internal/speech"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{FeedErr: err}
	if _, got := p.GameFeed(context.Background(), "716463"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.FeedCalls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.FeedCalls.Load())
	}

	p.Sched = statsapi.ScheduleResponse{Dates: []statsapi.ScheduleDate{{Date: "2024-07-24"}}}
	resp, schedErr := p.Schedule(context.Background(), 2024, "R")
	if schedErr != nil || len(resp.Dates) != 1 {
		t.Fatalf("expected configured schedule, got %v err %v", resp, schedErr)
	}
	if p.SchedCalls.Load() != 1 {
		t.Fatalf("expected schedule call count 1, got %d", p.SchedCalls.Load())
	}
}

func TestStubChatClientReplaysResponsesInOrder(t *testing.T) {
	c := &StubChatClient{Responses: []string{"first", "second"}}

	for _, want := range []string{"first", "second", "second"} {
		resp, err := c.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{Model: "test-model"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resp.Choices[0].Message.Content; got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
	if len(c.Requests) != 3 {
		t.Fatalf("expected 3 recorded requests, got %d", len(c.Requests))
	}
}

func TestStubSynthesizerRecordsChunks(t *testing.T) {
	s := &StubSynthesizer{Audio: map[string][]byte{"hello.": []byte("HELLO")}}

	audio, err := s.Synthesize(context.Background(), "hello.", speech.VoiceParams{})
	if err != nil || string(audio) != "HELLO" {
		t.Fatalf("expected mapped audio, got %q err %v", audio, err)
	}

	audio, err = s.Synthesize(context.Background(), "unmapped.", speech.VoiceParams{})
	if err != nil || string(audio) != "unmapped." {
		t.Fatalf("expected chunk text passthrough, got %q err %v", audio, err)
	}
	if len(s.Chunks) != 2 {
		t.Fatalf("expected 2 recorded chunks, got %d", len(s.Chunks))
	}

	s.Err = errors.New("quota")
	if _, err := s.Synthesize(context.Background(), "x", speech.VoiceParams{}); err == nil {
		t.Fatal("expected configured error")
	}
}
