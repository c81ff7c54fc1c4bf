package variantgen

import (
	"strings"
	"sync"
	"testing"
)

// fixedRand returns a scripted sequence of IntN values and identity
// permutations, so template, hint and temperature choices are
// reproducible. Safe for concurrent use.
type fixedRand struct {
	mu   sync.Mutex
	ints []int
	next int
}

func (f *fixedRand) IntN(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[f.next%len(f.ints)] % n
	f.next++
	return v
}

func (f *fixedRand) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestBuildInstruction_InterpolatesAllParts(t *testing.T) {
	transforms := []string{"simplify the language", "reduce the complexity"}
	personas := []string{"an expert in the field", "a creative thinker"}

	got := buildInstruction("Explain recursion.", Easier, 5, transforms, personas, &fixedRand{})

	for _, want := range []string{
		"Explain recursion.",
		"5 creative variant(s)",
		"easier than the original",
		"simplify the language, reduce the complexity",
		"an expert in the field, a creative thinker",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("instruction missing %q", want)
		}
	}
}

func TestBuildInstruction_ContainsOutputContract(t *testing.T) {
	for i := range instructionTemplates {
		got := buildInstruction("p", Harder, 1, []string{"x"}, []string{"y"}, &fixedRand{ints: []int{i}})

		for _, marker := range []string{"====", "Reasoning:", "Variant:"} {
			if !strings.Contains(got, marker) {
				t.Errorf("template %d missing output marker %q", i, marker)
			}
		}
	}
}

func TestBuildInstruction_TemplateChoiceFollowsRand(t *testing.T) {
	a := buildInstruction("p", Easier, 1, []string{"x"}, []string{"y"}, &fixedRand{ints: []int{0}})
	b := buildInstruction("p", Easier, 1, []string{"x"}, []string{"y"}, &fixedRand{ints: []int{1}})

	if a == b {
		t.Error("expected different templates for different random choices")
	}
	if !strings.Contains(a, "Assume you can adopt various personas") {
		t.Error("choice 0 did not select the first template")
	}
	if !strings.Contains(b, "Channel the creative spirit") {
		t.Error("choice 1 did not select the second template")
	}
}
