package variantgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "promptvary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
difficulties: [equivalent, harder]
num_variants: 5
recursion_depth: 2
temperatures: [0.5, 0.9]
transformations:
  harder:
    - add a twist
personas:
  - a puzzle designer
`)

	cfg, err := DefaultConfig().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []Difficulty{Equivalent, Harder}, cfg.Difficulties)
	assert.Equal(t, 5, cfg.NumVariants)
	assert.Equal(t, 2, cfg.RecursionDepth)
	assert.Equal(t, []float64{0.5, 0.9}, cfg.Temperatures)
	assert.Equal(t, []string{"add a twist"}, cfg.Transformations[Harder])
	assert.Equal(t, []string{"a puzzle designer"}, cfg.Personas)

	// Untouched fields keep their defaults.
	assert.Equal(t, 3, cfg.Oversample)
	assert.Equal(t, 10, cfg.MaxChunkSize)
}

func TestLoadFile_PartialOverride(t *testing.T) {
	path := writeConfig(t, "num_variants: 7\n")

	cfg, err := DefaultConfig().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.NumVariants)
	assert.Equal(t, []Difficulty{Easier}, cfg.Difficulties)
	assert.NotEmpty(t, cfg.Transformations[Easier])
}

func TestLoadFile_RejectsUnknownDifficulty(t *testing.T) {
	path := writeConfig(t, "difficulties: [impossible]\n")

	_, err := DefaultConfig().LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := DefaultConfig().LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Difficulties = nil
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.NumVariants = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.RecursionDepth = -1
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Temperatures = nil
	assert.Error(t, bad.Validate())
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"easier", "equivalent", "harder"} {
		d, err := ParseDifficulty(s)
		require.NoError(t, err)
		assert.Equal(t, Difficulty(s), d)
	}

	_, err := ParseDifficulty("EASIER")
	assert.Error(t, err)
}
