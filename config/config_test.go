package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/pkg/option"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name                string
		input               string
		expectedAccumulator int
		expectedAddend      option.Option[int]
	}{
		{
			name:                "Empty",
			input:               "",
			expectedAccumulator: 42,
			expectedAddend:      option.Some(12),
		},
		{
			name: "Some",
			input: `
accumulator: 10
addend:
  type: some
  config:
    value: 5
`,
			expectedAccumulator: 10,
			expectedAddend:      option.Some(5),
		},
		{
			name: "None",
			input: `
addend:
  type: none
`,
			expectedAccumulator: 42,
			expectedAddend:      option.None[int](),
		},
		{
			name:                "AccumulatorOnly",
			input:               "accumulator: -1\n",
			expectedAccumulator: -1,
			expectedAddend:      option.Some(12),
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			config, err := Decode(strings.NewReader(testCase.input))
			require.NoError(t, err)

			assert.Equal(t, testCase.expectedAccumulator, config.Accumulator)
			assert.Equal(t, testCase.expectedAddend, config.Addend.Config.CreateAddend())

			runner := config.NewRunner()
			assert.Equal(t, testCase.expectedAccumulator, runner.Initial)
			assert.Equal(t, testCase.expectedAddend, runner.Addend)
		})
	}
}

func TestDecode_Error(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		err   string
	}{
		{
			name:  "UnknownType",
			input: "addend:\n  type: maybe\n",
			err:   `unknown addend type: "maybe" (expected one of: none, some)`,
		},
		{
			name:  "MissingValue",
			input: "addend:\n  type: some\n",
			err:   "addend: some: value is required",
		},
		{
			name:  "UnusedKey",
			input: "addend:\n  type: none\n  config:\n    value: 1\n",
			err:   "addend: none:",
		},
		{
			name:  "UnknownField",
			input: "accumulator: 1\nmultiplier: 2\n",
			err:   "field multiplier not found",
		},
		{
			name:  "WrongType",
			input: "addend:\n  type: some\n  config:\n    value: twelve\n",
			err:   "addend: some:",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(testCase.input))
			require.Error(t, err)

			assert.Contains(t, err.Error(), testCase.err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("NoPath", func(t *testing.T) {
		config, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, Default(), config)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tally.yaml")

		err := os.WriteFile(path, []byte("accumulator: 1\naddend:\n  type: some\n  config:\n    value: 2\n"), 0o600)
		require.NoError(t, err)

		config, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 1, config.Accumulator)
		assert.Equal(t, option.Some(2), config.Addend.Config.CreateAddend())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	assert.EqualError(t, Config{}.Validate(), "addend type is required")
}

func TestRegisterAddendFactory(t *testing.T) {
	assert.Equal(t, []string{"none", "some"}, AddendTypes())

	assert.Panics(t, func() {
		RegisterAddendFactory("some", someAddend{})
	})

	assert.Panics(t, func() {
		RegisterAddendFactory("nil", nil)
	})
}
