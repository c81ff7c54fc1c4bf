package variantgen

import "time"

// newRecord builds an immutable Record from one parsed pair.
// Returns nil when the variant text is empty, signalling the caller
// to drop the pair.
func newRecord(original string, difficulty Difficulty, pair parsedPair, transforms []string) *Record {
	if pair.Variant == "" {
		return nil
	}
	return &Record{
		Original:            original,
		RequestedDifficulty: difficulty,
		Variant:             pair.Variant,
		Reasoning:           pair.Reasoning,
		TransformationsUsed: transforms,
		Evaluation:          nil,
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
	}
}
