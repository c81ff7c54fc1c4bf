package variantgen

import (
	"regexp"
	"strings"
)

var (
	// blockDelim splits a response on the literal "====" delimiter,
	// swallowing trailing whitespace.
	blockDelim = regexp.MustCompile(`====\s*`)

	// reasoningPattern captures everything between the "Reasoning:" and
	// "Variant:" markers, non-greedy, across lines.
	reasoningPattern = regexp.MustCompile(`(?s)Reasoning:\s*(.*?)\s*Variant:`)
)

// parseVariants extracts {reasoning, variant} pairs from one raw LLM
// response. This is a best-effort textual contract: blocks missing
// either marker, or with an empty variant line, are silently dropped.
func parseVariants(text string) []parsedPair {
	var pairs []parsedPair
	for _, block := range blockDelim.Split(text, -1) {
		if !strings.Contains(block, "Variant:") || !strings.Contains(block, "Reasoning:") {
			continue
		}

		var reasoning string
		if m := reasoningPattern.FindStringSubmatch(block); m != nil {
			reasoning = strings.TrimSpace(m[1])
		}

		// The variant is the remainder of the first "Variant:" line.
		// No multi-line continuation.
		var variant string
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if rest, ok := strings.CutPrefix(line, "Variant:"); ok {
				variant = strings.TrimSpace(rest)
				break
			}
		}

		if variant != "" {
			pairs = append(pairs, parsedPair{Reasoning: reasoning, Variant: variant})
		}
	}
	return pairs
}
