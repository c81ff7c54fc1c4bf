package variantgen

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/promptvary/internal/llm"
)

// fallbackTransforms is used when a difficulty has no configured pool.
var fallbackTransforms = []string{"make a small change"}

// Generator produces prompt variants using an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
	rng      Rand

	// timeout bounds each individual generation call. Zero disables it.
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand substitutes the random-choice source. Tests use this to
// make template, hint and temperature selection deterministic.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithTimeout bounds each individual LLM call.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config, opts ...Option) *Generator {
	g := &Generator{
		provider: provider,
		cfg:      cfg,
		rng:      DefaultRand(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// chunkJob is one pending generation call: a difficulty and the number
// of variants requested from the service in that call.
type chunkJob struct {
	difficulty Difficulty
	count      int
}

// Run orchestrates variant generation for a base prompt: oversampled
// chunked fan-out per difficulty, a single fail-fast join, merge,
// dedupe, truncate, then optional recursion on the survivors.
//
// The returned list holds top-level records first (ordered by
// difficulty, then acceptance order), followed by recursively
// generated records in the order their parents were processed.
func (g *Generator) Run(ctx context.Context, basePrompt string) ([]Record, error) {
	seen := make(seenSet)
	return g.run(ctx, basePrompt, g.cfg.RecursionDepth, seen)
}

func (g *Generator) run(ctx context.Context, prompt string, depth int, seen seenSet) ([]Record, error) {
	var jobs []chunkJob
	for _, d := range g.cfg.Difficulties {
		total := g.cfg.NumVariants * g.cfg.Oversample
		for _, n := range chunkSizes(total, g.cfg.MaxChunkSize) {
			jobs = append(jobs, chunkJob{difficulty: d, count: n})
		}
	}

	// Fan out every chunk across all difficulties at once. The join is
	// all-or-nothing: the first chunk failure cancels the rest and
	// aborts this call.
	results := make([][]Record, len(jobs))
	eg, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		eg.Go(func() error {
			recs, err := g.generateChunk(gctx, prompt, job.difficulty, job.count)
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	byDifficulty := mergeChunks(jobs, results, seen)

	var final []Record
	for _, d := range g.cfg.Difficulties {
		recs := byDifficulty[d]
		if len(recs) > g.cfg.NumVariants {
			recs = recs[:g.cfg.NumVariants]
		}
		final = append(final, recs...)
	}

	if depth > 0 {
		var children []Record
		for _, rec := range final {
			sub, err := g.run(ctx, rec.Variant, depth-1, seen)
			if err != nil {
				return nil, err
			}
			children = append(children, sub...)
		}
		final = append(final, children...)
	}

	return final, nil
}

// generateChunk performs one LLM call covering up to MaxChunkSize
// variants: sample hints and temperature, compose the instruction,
// call the provider, parse, then build records from the pairs
// concurrently, rejoined in parse order.
func (g *Generator) generateChunk(ctx context.Context, prompt string, difficulty Difficulty, count int) ([]Record, error) {
	transforms := g.sampleTransforms(difficulty)
	instruction := buildInstruction(prompt, difficulty, count, transforms, g.cfg.Personas, g.rng)
	temperature := g.cfg.Temperatures[g.rng.IntN(len(g.cfg.Temperatures))]

	callCtx := llm.WithPurpose(ctx, "variant-gen")
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, g.timeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(callCtx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: instruction}},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s chunk of %d: %w", difficulty, count, err)
	}

	pairs := parseVariants(resp.Content)

	built := make([]*Record, len(pairs))
	var eg errgroup.Group
	for i, pair := range pairs {
		eg.Go(func() error {
			built[i] = newRecord(prompt, difficulty, pair, transforms)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(built))
	for _, r := range built {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records, nil
}

// sampleTransforms draws 3-6 hints (fewer if the pool is smaller)
// without replacement from the difficulty's pool.
func (g *Generator) sampleTransforms(difficulty Difficulty) []string {
	pool := g.cfg.Transformations[difficulty]
	if len(pool) == 0 {
		pool = fallbackTransforms
	}

	k := 3 + g.rng.IntN(4)
	if k > len(pool) {
		k = len(pool)
	}

	perm := g.rng.Perm(len(pool))
	out := make([]string, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, pool[idx])
	}
	return out
}
