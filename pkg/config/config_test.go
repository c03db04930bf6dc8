package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/dronebl/pkg/config"
)

func TestLoad(t *testing.T) {
	type testCase struct {
		name     string
		contents *string
		expected config.Config
	}

	str := func(s string) *string { return &s }

	testCases := []testCase{
		{name: "Missing File", contents: nil, expected: config.Config{}},
		{
			name:     "Full File",
			contents: str(`{"rpckey": "abc", "staging": true, "debug": true}`),
			expected: config.Config{RPCKey: str("abc"), Staging: true, Debug: true},
		},
		{
			name:     "Partial File Merges Over Defaults",
			contents: str(`{"staging": true}`),
			expected: config.Config{Staging: true},
		},
		{
			name:     "Null Key",
			contents: str(`{"rpckey": null, "staging": false, "debug": false}`),
			expected: config.Config{},
		},
		{
			name:     "Unknown Keys Ignored",
			contents: str(`{"rpckey": "abc", "colour": "blue"}`),
			expected: config.Config{RPCKey: str("abc")},
		},
		// Corrupt files silently fall back to the defaults.
		{name: "Corrupt File", contents: str(`{"rpckey": "abc", "staging": `), expected: config.Config{}},
		{name: "Wrong Types", contents: str(`{"rpckey": "abc", "staging": "yes"}`), expected: config.Config{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".dronebl")
			if tc.contents != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tc.contents), 0o600))
			}

			assert.Equal(t, tc.expected, config.Load(path))
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dronebl")

	cfg := config.Config{Debug: true}
	cfg.SetKey("my-key")
	require.NoError(t, config.Save(path, cfg))

	loaded := config.Load(path)
	assert.Equal(t, "my-key", loaded.Key())
	assert.True(t, loaded.Debug)
	assert.False(t, loaded.Staging)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rpckey": "my-key", "staging": false, "debug": true}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_NullKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dronebl")
	require.NoError(t, config.Save(path, config.Config{Staging: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rpckey": null, "staging": true, "debug": false}`, string(data))
}

func TestSave_WriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", ".dronebl")

	err := config.Save(path, config.Config{})
	require.Error(t, err)

	var writeErr *config.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, path, writeErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "unable to update configuration")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".dronebl"), path)
}
