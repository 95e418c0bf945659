package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/neurosym/internal/kb"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "neurosym "+version+"\n", out)
}

func TestReasonQuery(t *testing.T) {
	out, err := run(t, "reason", "--kb", "testdata/syllogism.yaml", "--query", "Socrates", "--chain", "isA,isA")
	require.NoError(t, err)
	assert.Contains(t, out, "Socrates via [isA isA]")
	assert.Contains(t, out, "Mortal")
	assert.NotContains(t, out, "  Man")
}

func TestReasonSavedQueries(t *testing.T) {
	out, err := run(t, "reason", "--kb", "testdata/syllogism.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Socrates via [isA isA]")
	assert.Contains(t, out, "Man via []")
}

func TestReasonJSON(t *testing.T) {
	out, err := run(t, "reason", "--kb", "testdata/syllogism.yaml", "-q", "Socrates", "-c", "isA", "--json")
	require.NoError(t, err)

	var res kb.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Socrates", res.Query)
	assert.Equal(t, []kb.Inference{{Fact: "Man", Confidence: 1}}, res.Results)
}

func TestReasonErrors(t *testing.T) {
	_, err := run(t, "reason", "--kb", "testdata/syllogism.yaml", "-q", "Socrates", "-c", "partOf")
	require.ErrorIs(t, err, kb.ErrRelationNotFound)

	_, err = run(t, "reason", "--kb", "testdata/syllogism.yaml", "-q", "Plato")
	require.ErrorIs(t, err, kb.ErrFactNotFound)

	_, err = run(t, "reason", "-q", "Socrates")
	require.Error(t, err, "a source is required")
}

func TestSnapshotSaveShowReason(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.safetensors")

	out, err := run(t, "snapshot", "save", "--kb", "testdata/syllogism.yaml", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, err = run(t, "snapshot", "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "facts:    [Socrates Man Mortal]")
	assert.Contains(t, out, "relation: isA [3 3]")

	out, err = run(t, "reason", "--snapshot", path, "-q", "Socrates", "-c", "isA,isA")
	require.NoError(t, err)
	assert.Contains(t, out, "Mortal")
}

func TestLogic(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"logic", "and", "-i", "0.8,0.5,0.3", "-i", "0.6,0.9,0.4"}, "[0.6 0.5 0.3]\n"},
		{[]string{"logic", "OR", "-i", "0.8,0.5,0.3", "-i", "0.6,0.9,0.4"}, "[0.8 0.9 0.4]\n"},
		{[]string{"logic", "not", "-i", "1,0,0.5"}, "[0 1 0.5]\n"},
		{[]string{"logic", "implies", "-i", "1,1,0,0", "-i", "1,0,1,0"}, "[1 0 1 1]\n"},
		{[]string{"logic", "and", "-i", "1,0;0,1", "-i", "0.5,0.5;0.5,0.5"}, "[[0.5 0] [0 0.5]]\n"},
	}

	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}

	_, err := run(t, "logic", "xor", "-i", "1", "-i", "0")
	require.Error(t, err)
	_, err = run(t, "logic", "and", "-i", "1")
	require.Error(t, err)
	_, err = run(t, "logic", "and", "-i", "1,x", "-i", "1,0")
	require.Error(t, err)
}

func TestMatmul(t *testing.T) {
	out, err := run(t, "matmul", "--a", "1,2,3;4,5,6", "--b", "7,8;9,10;11,12")
	require.NoError(t, err)
	assert.Equal(t, "[[58 64] [139 154]]\n", out)

	_, err = run(t, "matmul", "--a", "1,2;3,4", "--b", "1,2,3;4,5,6;7,8,9")
	require.Error(t, err)

	_, err = run(t, "matmul", "--a", "1,2", "--b", "1;2")
	require.Error(t, err, "vectors are not matrices")
}
