package variantgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls one orchestration run.
type Config struct {
	// Difficulties is the active difficulty set.
	Difficulties []Difficulty

	// NumVariants is the number of final variants kept per difficulty.
	NumVariants int

	// RecursionDepth > 0 generates variants of the variants.
	RecursionDepth int

	// Oversample is the multiplier applied to NumVariants when
	// requesting from the LLM, to offset parse misses and duplicates.
	Oversample int

	// MaxChunkSize caps the variant count requested in a single LLM call.
	MaxChunkSize int

	// Temperatures is the discrete set a sampling temperature is drawn from.
	Temperatures []float64

	// MaxTokens is the response token budget per LLM call.
	MaxTokens int

	// Transformations maps each difficulty to its hint pool.
	Transformations map[Difficulty][]string

	// Personas inspire creative variants; joined into the instruction.
	Personas []string
}

// DefaultConfig returns the built-in generation parameters.
func DefaultConfig() Config {
	return Config{
		Difficulties:   []Difficulty{Easier},
		NumVariants:    3,
		RecursionDepth: 0,
		Oversample:     3,
		MaxChunkSize:   10,
		Temperatures:   []float64{0.8, 1.0, 1.2, 1.4},
		MaxTokens:      2048,
		Transformations: map[Difficulty][]string{
			Easier: {
				"simplify the language",
				"reduce the complexity",
				"remove unnecessary details",
				"simplify the instructions",
			},
			Equivalent: {
				"make minor adjustments",
				"change wording slightly",
				"rephrase without altering meaning",
				"substitute synonyms",
			},
			Harder: {
				"add additional details",
				"increase complexity",
				"introduce more technical language",
				"expand the prompt",
				"add challenging constraints",
			},
		},
		Personas: []string{
			"an expert in the field",
			"a creative thinker",
			"a seasoned professional",
			"an enthusiastic beginner",
			"a visionary strategist",
			"a technical specialist",
			"a pragmatic problem-solver",
		},
	}
}

// fileConfig is the YAML override surface. Zero values leave the
// corresponding Config field untouched.
type fileConfig struct {
	Difficulties    []string            `yaml:"difficulties"`
	NumVariants     int                 `yaml:"num_variants"`
	RecursionDepth  int                 `yaml:"recursion_depth"`
	Oversample      int                 `yaml:"oversample"`
	MaxChunkSize    int                 `yaml:"max_chunk_size"`
	Temperatures    []float64           `yaml:"temperatures"`
	MaxTokens       int                 `yaml:"max_tokens"`
	Transformations map[string][]string `yaml:"transformations"`
	Personas        []string            `yaml:"personas"`
}

// LoadFile applies overrides from a YAML file on top of c.
func (c Config) LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}

	if len(fc.Difficulties) > 0 {
		c.Difficulties = c.Difficulties[:0]
		for _, s := range fc.Difficulties {
			d, err := ParseDifficulty(s)
			if err != nil {
				return c, err
			}
			c.Difficulties = append(c.Difficulties, d)
		}
	}
	if fc.NumVariants > 0 {
		c.NumVariants = fc.NumVariants
	}
	if fc.RecursionDepth > 0 {
		c.RecursionDepth = fc.RecursionDepth
	}
	if fc.Oversample > 0 {
		c.Oversample = fc.Oversample
	}
	if fc.MaxChunkSize > 0 {
		c.MaxChunkSize = fc.MaxChunkSize
	}
	if len(fc.Temperatures) > 0 {
		c.Temperatures = fc.Temperatures
	}
	if fc.MaxTokens > 0 {
		c.MaxTokens = fc.MaxTokens
	}
	if len(fc.Transformations) > 0 {
		pools := make(map[Difficulty][]string, len(fc.Transformations))
		for k, v := range fc.Transformations {
			d, err := ParseDifficulty(k)
			if err != nil {
				return c, err
			}
			pools[d] = v
		}
		c.Transformations = pools
	}
	if len(fc.Personas) > 0 {
		c.Personas = fc.Personas
	}

	return c, nil
}

// Validate checks the run parameters.
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("at least one difficulty is required")
	}
	if c.NumVariants < 1 {
		return fmt.Errorf("num_variants must be at least 1")
	}
	if c.RecursionDepth < 0 {
		return fmt.Errorf("recursion_depth must not be negative")
	}
	if c.Oversample < 1 {
		return fmt.Errorf("oversample must be at least 1")
	}
	if c.MaxChunkSize < 1 {
		return fmt.Errorf("max_chunk_size must be at least 1")
	}
	if len(c.Temperatures) == 0 {
		return fmt.Errorf("at least one temperature is required")
	}
	return nil
}
