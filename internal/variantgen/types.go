package variantgen

import "fmt"

// Difficulty labels the intended complexity of a variant relative to
// the original prompt.
type Difficulty string

const (
	Easier     Difficulty = "easier"
	Equivalent Difficulty = "equivalent"
	Harder     Difficulty = "harder"
)

// ParseDifficulty validates a difficulty label.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easier, Equivalent, Harder:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easier, equivalent or harder)", s)
}

// Record is one accepted prompt variant. Records are immutable after
// creation: they either land in the final output or seed a recursive
// generation round as a new base prompt.
//
// JSON field order matches the persisted file layout.
type Record struct {
	Original            string     `json:"original"`
	RequestedDifficulty Difficulty `json:"requested_difficulty"`
	Variant             string     `json:"variant"`
	Reasoning           string     `json:"reasoning"`
	TransformationsUsed []string   `json:"transformations_used"`

	// Evaluation is a placeholder for a future quality metric.
	// Always null in the persisted output.
	Evaluation *float64 `json:"evaluation"`

	// Timestamp is the creation time as an RFC 3339 UTC string.
	Timestamp string `json:"timestamp"`
}

// parsedPair is one {reasoning, variant} pair extracted from a single
// delimited response block. Discarded once converted to a Record.
type parsedPair struct {
	Reasoning string
	Variant   string
}
