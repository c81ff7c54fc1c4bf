package variantgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/promptvary/internal/llm"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Difficulties = []Difficulty{Easier}
	cfg.NumVariants = 2
	cfg.Oversample = 3
	return cfg
}

// responseWith builds a well-formed generation reply containing the
// given variant strings.
func responseWith(variantTexts ...string) string {
	var b strings.Builder
	for i, v := range variantTexts {
		fmt.Fprintf(&b, "====\nVariant %d:\nReasoning: reason %d\nVariant: %s\n====\n", i+1, i+1, v)
	}
	return b.String()
}

func TestRun_TruncatesAndDeduplicates(t *testing.T) {
	mock := llm.NewRepeatingMockProvider(llm.MockResponse{
		Content: responseWith("alpha", "beta", "alpha", "gamma"),
	})
	gen := New(mock, testConfig(), WithRand(&fixedRand{}))

	records, err := gen.Run(context.Background(), "base prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Variant != "alpha" || records[1].Variant != "beta" {
		t.Errorf("unexpected survivors: %q, %q", records[0].Variant, records[1].Variant)
	}
	for _, rec := range records {
		if rec.Original != "base prompt" {
			t.Errorf("unexpected original: %q", rec.Original)
		}
		if rec.RequestedDifficulty != Easier {
			t.Errorf("unexpected difficulty: %q", rec.RequestedDifficulty)
		}
		if len(rec.TransformationsUsed) == 0 {
			t.Error("expected sampled transformations on every record")
		}
	}
}

func TestRun_DedupIsGlobalAcrossDifficulties(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulties = []Difficulty{Easier, Harder}
	cfg.NumVariants = 3
	cfg.Oversample = 1

	// Both chunks yield the same two variant strings; the first
	// difficulty in submission order claims them.
	mock := llm.NewRepeatingMockProvider(llm.MockResponse{
		Content: responseWith("shared-x", "shared-y"),
	})
	gen := New(mock, cfg, WithRand(&fixedRand{}))

	records, err := gen.Run(context.Background(), "base")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, rec := range records {
		if rec.RequestedDifficulty != Easier {
			t.Errorf("duplicate should have been claimed by easier, got %q", rec.RequestedDifficulty)
		}
	}

	seen := map[string]bool{}
	for _, rec := range records {
		if seen[rec.Variant] {
			t.Errorf("duplicate variant in output: %q", rec.Variant)
		}
		seen[rec.Variant] = true
	}
}

func TestRun_ChunkFanOut(t *testing.T) {
	cfg := testConfig()
	cfg.NumVariants = 3 // 3 × 3 = 9 requested in a single chunk

	mock := llm.NewRepeatingMockProvider(llm.MockResponse{Content: "no blocks here"})
	gen := New(mock, cfg, WithRand(&fixedRand{}))

	if _, err := gen.Run(context.Background(), "base"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 chunk call for 9 requested, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if len(req.Messages) != 1 {
		t.Fatalf("expected a single user message, got %d", len(req.Messages))
	}
	if !strings.Contains(req.Messages[0].Content, "generate 9 creative variant(s)") {
		t.Error("chunk request does not ask for the oversampled count")
	}
	if req.Temperature != 0.8 {
		t.Errorf("expected first temperature choice 0.8, got %v", req.Temperature)
	}
}

func TestRun_LargeRequestSplitsIntoChunks(t *testing.T) {
	cfg := testConfig()
	cfg.NumVariants = 9 // 9 × 3 = 27 → chunks of 10, 10, 7

	mock := llm.NewRepeatingMockProvider(llm.MockResponse{Content: "no blocks here"})
	gen := New(mock, cfg, WithRand(&fixedRand{}))

	if _, err := gen.Run(context.Background(), "base"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 chunk calls for 27 requested, got %d", mock.CallCount())
	}
}

func TestRun_NoParseableOutputIsNotAnError(t *testing.T) {
	mock := llm.NewRepeatingMockProvider(llm.MockResponse{Content: "the model ignored the format"})
	gen := New(mock, testConfig(), WithRand(&fixedRand{}))

	records, err := gen.Run(context.Background(), "base")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestRun_ProviderFailureAbortsRun(t *testing.T) {
	boom := errors.New("quota exceeded")
	mock := llm.NewRepeatingMockProvider(llm.MockResponse{Err: boom})
	gen := New(mock, testConfig(), WithRand(&fixedRand{}))

	_, err := gen.Run(context.Background(), "base")
	if !errors.Is(err, boom) {
		t.Fatalf("expected provider error to propagate, got %v", err)
	}
}

func TestRun_RecursionDepthOne(t *testing.T) {
	cfg := testConfig()
	cfg.NumVariants = 1
	cfg.Oversample = 1
	cfg.RecursionDepth = 1

	// First call serves the top level, second call the recursive round.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: responseWith("level one")},
		llm.MockResponse{Content: responseWith("level two")},
	)
	gen := New(mock, cfg, WithRand(&fixedRand{}))

	records, err := gen.Run(context.Background(), "base")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected parent and child records, got %d", len(records))
	}
	if records[0].Original != "base" || records[0].Variant != "level one" {
		t.Errorf("unexpected top-level record: %+v", records[0])
	}
	if records[1].Original != "level one" || records[1].Variant != "level two" {
		t.Errorf("child should use the parent variant as its original: %+v", records[1])
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRun_RecursionSharesDedupSet(t *testing.T) {
	cfg := testConfig()
	cfg.NumVariants = 1
	cfg.Oversample = 1
	cfg.RecursionDepth = 1

	// The recursive round regurgitates the parent variant; the shared
	// seen-set drops it, leaving only the top-level record.
	mock := llm.NewRepeatingMockProvider(llm.MockResponse{
		Content: responseWith("echo"),
	})
	gen := New(mock, cfg, WithRand(&fixedRand{}))

	records, err := gen.Run(context.Background(), "base")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected the duplicate child to be dropped, got %d records", len(records))
	}
	if records[0].Original != "base" {
		t.Errorf("unexpected original: %q", records[0].Original)
	}
}

func TestSampleTransforms_Bounds(t *testing.T) {
	cfg := DefaultConfig()
	gen := New(llm.NewMockProvider(), cfg)

	for range 50 {
		for d, pool := range cfg.Transformations {
			got := gen.sampleTransforms(d)
			if len(got) < 3 && len(got) != len(pool) {
				t.Fatalf("%s: sampled %d hints from pool of %d", d, len(got), len(pool))
			}
			if len(got) > 6 {
				t.Fatalf("%s: sampled %d hints, max is 6", d, len(got))
			}
			seen := map[string]bool{}
			for _, h := range got {
				if seen[h] {
					t.Fatalf("%s: hint %q sampled twice", d, h)
				}
				seen[h] = true
			}
		}
	}
}

func TestSampleTransforms_UnknownDifficultyFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transformations = map[Difficulty][]string{}
	gen := New(llm.NewMockProvider(), cfg, WithRand(&fixedRand{}))

	got := gen.sampleTransforms(Easier)
	if len(got) != 1 || got[0] != "make a small change" {
		t.Errorf("unexpected fallback hints: %v", got)
	}
}
