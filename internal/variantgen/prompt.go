package variantgen

import (
	"fmt"
	"strings"
)

// instructionTemplates are semantically equivalent phrasings of the
// generation request; one is chosen uniformly at random per call.
// Interpolation order: personas, base prompt, count, difficulty, hints.
// Both end with the exact output contract the parser expects.
var instructionTemplates = []string{
	`Assume you can adopt various personas such as %s.

Given the prompt/task: %s
Your task is to generate %d creative variant(s) that are %s than the original.

Important constraints:
- Maintain the original intent of the prompt.
- Avoid introducing arbitrary or irrelevant changes.
- All modifications should be specific and meaningful.

Follow these steps:
1. Analyze the original prompt deeply, looking for hidden simplifications and opportunities for improvement.
2. Think outside conventional approaches - consider alternative phrasings, simplifications, or restructuring.
3. Draw inspiration from various fields. Some ideas: %s
4. Provide a detailed explanation of your creative reasoning process.
5. Present each variant in the following exact format:
====
Variant <number>:
Reasoning: <your creative chain-of-thought explanation>
Variant: <the new prompt variant>
====

Generate truly novel variants that might surprise even experienced practitioners.`,

	`Channel the creative spirit of professionals like %s.

For this task: %s
Create %d variant(s) that are %s than the original prompt.

Key points:
- Do not change the core intent of the prompt.
- All modifications must be specific and justified.

Steps:
1. Examine the prompt carefully and identify aspects that can be simplified or modified.
2. Experiment with ideas such as: %s
3. Explain your reasoning in detail.
4. Provide your answer in the following exact format:
====
Variant <number>:
Reasoning: <your creative chain-of-thought explanation>
Variant: <the new prompt variant>
====

Aim to create variants that reveal new perspectives on the original prompt.`,
}

// buildInstruction composes the full generation instruction for one
// chunk. Pure string construction; never fails.
func buildInstruction(prompt string, difficulty Difficulty, count int, transforms, personas []string, r Rand) string {
	tmpl := instructionTemplates[r.IntN(len(instructionTemplates))]
	return fmt.Sprintf(tmpl,
		strings.Join(personas, ", "),
		prompt,
		count,
		difficulty,
		strings.Join(transforms, ", "),
	)
}
