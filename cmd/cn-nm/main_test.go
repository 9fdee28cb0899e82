package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func nopLogger(bool) (*zap.Logger, error) {
	return zap.NewNop(), nil
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(nopLogger)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestTextCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"text", "10001", "10.25"}, "壹万零壹\n壹拾点贰伍\n"},
		{[]string{"text", "--money", "100"}, "壹佰元整\n"},
		{[]string{"money", "0.5", "1.05"}, "伍角\n壹元零伍分\n"},
		{[]string{"--signed", "text", "--", "-12"}, "负壹拾贰\n"},
		{[]string{"--full-width", "text", "１２３"}, "壹佰贰拾叁\n"},
		{[]string{"number", "壹万零壹", "壹拾点贰伍"}, "10001\n10.25\n"},
		{[]string{"number", "--money", "壹元零伍分"}, "1.05\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0]+"/"+tt.args[len(tt.args)-1], func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := run(t, tt.args...)
			require.NoError(t, err, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRejectedInputs(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, "text", "7", "--", "-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 inputs rejected")
	assert.Equal(t, "柒\n", stdout)
	assert.Contains(t, stderr, "negative")

	_, stderr, err = run(t, "number", "壹万拾")
	require.Error(t, err)
	assert.Contains(t, stderr, "stranded_small_unit")
}

func TestExplain(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "number", "--explain", "拾", "壹拾")
	require.NoError(t, err)

	assert.Contains(t, stdout, "拾:\n  error ")
	assert.Contains(t, stdout, "[bare_unit]")
	assert.Contains(t, stdout, "壹拾: ok\n")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "cn-nm.yaml", "mode: money\nsigned: true\n")

	stdout, _, err := run(t, "--config", path, "text", "2")
	require.NoError(t, err)
	assert.Equal(t, "贰元整\n", stdout)

	stdout, _, err = run(t, "--config", path, "text", "--money=false", "--", "-2")
	require.NoError(t, err)
	assert.Equal(t, "负贰\n", stdout)

	_, _, err = run(t, "--config", path, "--signed=false", "text", "--", "-2")
	require.Error(t, err)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "text", "1")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "check", "--file", "../../internal/suite/testdata/cases.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cases passed")
	assert.NotContains(t, stdout, "FAIL")

	path := writeFile(t, "cases.yaml", `
cases:
  - {name: eleven, kind: text, input: "11", want: 拾壹}
  - {kind: text, input: "12", want: 壹拾贰}
`)

	stdout, _, err = run(t, "check", "--file", path)
	require.Error(t, err)
	assert.Contains(t, stdout, "FAIL eleven")
	assert.Contains(t, stdout, "1/2 cases passed")

	_, _, err = run(t, "check")
	require.Error(t, err)
}
