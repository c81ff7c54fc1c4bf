package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestBuildOpenAIMessages(t *testing.T) {
	req := Request{
		System: "be terse",
		Messages: []Message{
			{Role: RoleUser, Content: "hello"},
			{Role: RoleAssistant, Content: "hi"},
		},
	}

	msgs := buildOpenAIMessages(req)

	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "be terse" {
		t.Errorf("unexpected system message: %+v", msgs[0])
	}
	if msgs[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("unexpected role: %s", msgs[1].Role)
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("unexpected role: %s", msgs[2].Role)
	}
}

func TestBuildOpenAIMessages_NoSystem(t *testing.T) {
	msgs := buildOpenAIMessages(Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
}

func TestMapOpenAIStopReason(t *testing.T) {
	if got := mapOpenAIStopReason(openai.FinishReasonStop); got != "end" {
		t.Errorf("stop: got %q", got)
	}
	if got := mapOpenAIStopReason(openai.FinishReasonLength); got != "max_tokens" {
		t.Errorf("length: got %q", got)
	}
	if got := mapOpenAIStopReason(openai.FinishReasonContentFilter); got != "end" {
		t.Errorf("other reasons normalize to end: got %q", got)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gpt-4o-mini", openaiModels); got != "gpt-4o-mini" {
		t.Errorf("friendly name: got %q", got)
	}
	// Unknown names pass through so direct model IDs work.
	if got := resolveModel("my-finetune-123", openaiModels); got != "my-finetune-123" {
		t.Errorf("passthrough: got %q", got)
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Error("expected error for missing API key")
	}
}
