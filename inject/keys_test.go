package inject

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// TagKey / SplitKey
// -----------------------------------------------------------------------------

// TestTagKey verifies TagKey appends the suffix and normalizes case.
func TestTagKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cylinder_args", TagKey("cylinder"))
	assert.Equal(t, "cylinder_args", TagKey("Cylinder"))
	assert.Equal(t, "engine_block_args", TagKey("ENGINE_BLOCK"))
}

// TestSplitKey verifies SplitKey decomposes well-formed keys and rejects
// everything else with a NamingError carrying the original key.
func TestSplitKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		key      string
		wantName string
		wantErr  bool
	}{
		{name: "plain", key: "cylinder_args", wantName: "cylinder"},
		{name: "mixed case", key: "Cylinder_ARGS", wantName: "cylinder"},
		{name: "name with underscore", key: "engine_block_args", wantName: "engine_block"},
		{name: "no suffix", key: "cylinder", wantErr: true},
		{name: "suffix only", key: "_args", wantErr: true},
		{name: "empty", key: "", wantErr: true},
		{name: "suffix in the middle", key: "cylinder_args_x", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := SplitKey(tc.key)
			if tc.wantErr {
				require.Error(t, err)
				var naming NamingError
				require.True(t, errors.As(err, &naming))
				assert.Equal(t, tc.key, naming.Key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, got)
		})
	}
}

// TestSplitKey_RoundTrip verifies SplitKey inverts TagKey.
func TestSplitKey_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"cylinder", "bumper", "engine_block"} {
		got, err := SplitKey(TagKey(name))
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}
}

//
// -----------------------------------------------------------------------------
// Arg / ArgOr
// -----------------------------------------------------------------------------

// TestArg verifies typed retrieval distinguishes missing keys from wrong types.
func TestArg(t *testing.T) {
	t.Parallel()

	args := Args{"hp": 95, "label": "front"}

	hp, ok := Arg[int](args, "hp")
	require.True(t, ok)
	assert.Equal(t, 95, hp)

	_, ok = Arg[int](args, "label")
	assert.False(t, ok)

	_, ok = Arg[int](args, "missing")
	assert.False(t, ok)
}

// TestArgOr verifies the fallback applies on missing keys and type mismatches.
func TestArgOr(t *testing.T) {
	t.Parallel()

	args := Args{"hp": 95, "label": "front"}

	assert.Equal(t, 95, ArgOr(args, "hp", 10))
	assert.Equal(t, 10, ArgOr(args, "missing", 10))
	assert.Equal(t, 10, ArgOr(args, "label", 10))
	assert.Equal(t, "x", ArgOr[string](nil, "anything", "x"))
}
