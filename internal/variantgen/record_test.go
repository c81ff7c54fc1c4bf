package variantgen

import (
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	rec := newRecord("base", Equivalent, parsedPair{Reasoning: "r", Variant: "v"}, []string{"t1", "t2"})

	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.Original != "base" {
		t.Errorf("unexpected original: %q", rec.Original)
	}
	if rec.RequestedDifficulty != Equivalent {
		t.Errorf("unexpected difficulty: %q", rec.RequestedDifficulty)
	}
	if rec.Variant != "v" || rec.Reasoning != "r" {
		t.Errorf("unexpected pair fields: %q / %q", rec.Variant, rec.Reasoning)
	}
	if len(rec.TransformationsUsed) != 2 {
		t.Errorf("unexpected transformations: %v", rec.TransformationsUsed)
	}
	if rec.Evaluation != nil {
		t.Error("evaluation must stay unset")
	}

	ts, err := time.Parse(time.RFC3339, rec.Timestamp)
	if err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
	if ts.Location() != time.UTC {
		t.Error("timestamp not UTC")
	}
}

func TestNewRecord_EmptyVariantDropped(t *testing.T) {
	if rec := newRecord("base", Easier, parsedPair{Reasoning: "r"}, nil); rec != nil {
		t.Errorf("expected nil record for empty variant, got %+v", rec)
	}
}
