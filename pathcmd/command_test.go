package pathcmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/jongio/pathvar/envvar"
	"github.com/jongio/pathvar/shellutil"
	"github.com/jongio/pathvar/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testVar = "TOOLPATH"

func list(entries ...string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

func execute(t *testing.T, opts []Option, args ...string) (string, error) {
	t.Helper()

	cmd := NewCommand(opts...)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func withEnv(values map[string]string) (*envvar.MapEnvironment, []Option) {
	env := envvar.NewMapEnvironment(values)
	return env, []Option{WithEnvironment(env)}
}

func TestShowDefault(t *testing.T) {
	_, opts := withEnv(map[string]string{testVar: list("/a", "/b")})

	output, err := execute(t, opts, "show", "--var", testVar)
	require.NoError(t, err)

	assert.Contains(t, output, testVar)
	assert.Contains(t, output, "  0  /a\n")
	assert.Contains(t, output, "  1  /b\n")
}

func TestShowUnset(t *testing.T) {
	_, opts := withEnv(nil)

	output, err := execute(t, opts, "show", "--var", testVar)
	require.NoError(t, err)
	assert.Contains(t, output, "(not set)")
}

func TestShowJSON(t *testing.T) {
	_, opts := withEnv(map[string]string{testVar: list("/a", "/b")})

	output, err := execute(t, opts, "show", "--var", testVar, "-o", "json")
	require.NoError(t, err)

	var result showResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, testVar, result.Variable)
	assert.True(t, result.Set)
	assert.Equal(t, []string{"/a", "/b"}, result.Entries)
}

func TestShowYAMLUnset(t *testing.T) {
	_, opts := withEnv(nil)

	output, err := execute(t, opts, "show", "--var", testVar, "--output", "yaml")
	require.NoError(t, err)

	var result showResult
	require.NoError(t, yaml.Unmarshal([]byte(output), &result))
	assert.False(t, result.Set)
	assert.Empty(t, result.Entries)
}

func TestShowUsesDefaultEnvironment(t *testing.T) {
	testutil.FakeEnvironment(t, map[string]string{envvar.PathVarName: "/from/default"})

	output, err := execute(t, nil, "show", "-o", "json")
	require.NoError(t, err)

	var result showResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, envvar.PathVarName, result.Variable)
	assert.Equal(t, []string{"/from/default"}, result.Entries)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, opts := withEnv(nil)

	_, err := execute(t, opts, "show", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestInvalidVariableName(t *testing.T) {
	_, opts := withEnv(nil)

	_, err := execute(t, opts, "show", "--var", "A=B")
	assert.Error(t, err)
}

func TestEditPrintsValue(t *testing.T) {
	env, opts := withEnv(map[string]string{testVar: list("/a", "/b")})

	output, err := execute(t, opts, "edit", "--var", testVar,
		"--append", "/s", "--remove", "/a", "--prepend", "/p1", "--prepend", "/p2")
	require.NoError(t, err)
	assert.Equal(t, list("/p1", "/p2", "/b", "/s")+"\n", output)

	// Without --write the environment is untouched.
	v, _ := env.LookupEnv(testVar)
	assert.Equal(t, list("/a", "/b"), v)
}

func TestEditRemoveAbsentIsNoop(t *testing.T) {
	_, opts := withEnv(map[string]string{testVar: list("/a", "/b")})

	output, err := execute(t, opts, "edit", "--var", testVar, "--remove", "/missing")
	require.NoError(t, err)
	assert.Equal(t, list("/a", "/b")+"\n", output)
}

func TestEditWrite(t *testing.T) {
	env, opts := withEnv(map[string]string{testVar: "/a"})

	output, err := execute(t, opts, "edit", "--var", testVar, "--append", "/b", "--write", "-o", "json")
	require.NoError(t, err)

	var result editResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.True(t, result.Written)
	assert.Equal(t, []string{"/a", "/b"}, result.Entries)

	v, _ := env.LookupEnv(testVar)
	assert.Equal(t, list("/a", "/b"), v)
}

func TestEditShell(t *testing.T) {
	_, opts := withEnv(map[string]string{testVar: "/a"})

	output, err := execute(t, opts, "edit", "--var", testVar, "--prepend", "/my dir", "--shell", "bash")
	require.NoError(t, err)
	assert.Equal(t, "export "+testVar+"='"+list("/my dir", "/a")+"'\n", output)
}

func TestEditShellAuto(t *testing.T) {
	_, opts := withEnv(map[string]string{testVar: "/a", "SHELL": "/usr/bin/fish"})

	output, err := execute(t, opts, "edit", "--var", testVar, "--shell", "auto")
	require.NoError(t, err)
	assert.Equal(t, "set -gx "+testVar+" '/a'\n", output)
}

func TestEditUnsupportedShell(t *testing.T) {
	_, opts := withEnv(map[string]string{testVar: "/a"})

	_, err := execute(t, opts, "edit", "--var", testVar, "--shell", "tcsh")
	assert.ErrorIs(t, err, shellutil.ErrUnsupportedShell)
}

func TestEditJoinFailure(t *testing.T) {
	env, opts := withEnv(map[string]string{testVar: "/a"})

	_, err := execute(t, opts, "edit", "--var", testVar, "--append", "/bad\x00entry", "--write")
	assert.ErrorIs(t, err, envvar.ErrInvalidEntry)

	v, _ := env.LookupEnv(testVar)
	assert.Equal(t, "/a", v, "a failed edit must not write")
}

func TestApply(t *testing.T) {
	env, opts := withEnv(map[string]string{testVar: list("/usr/games", "/bin")})
	plan := testutil.WriteFile(t, "plan.yaml", "variable: "+testVar+"\nremove: [/usr/games]\nprepend: [/home/me/.bin]\n")

	output, err := execute(t, opts, "apply", plan, "--write")
	require.NoError(t, err)
	assert.Equal(t, list("/home/me/.bin", "/bin")+"\n", output)

	v, _ := env.LookupEnv(testVar)
	assert.Equal(t, list("/home/me/.bin", "/bin"), v)
}

func TestApplyVarFlagOverridesPlan(t *testing.T) {
	_, opts := withEnv(map[string]string{"OTHERPATH": "/o", testVar: "/t"})
	plan := testutil.WriteFile(t, "plan.yaml", "variable: "+testVar+"\nappend: [/s]\n")

	output, err := execute(t, opts, "apply", plan, "--var", "OTHERPATH")
	require.NoError(t, err)
	assert.Equal(t, list("/o", "/s")+"\n", output)
}

func TestApplyRequiresPlan(t *testing.T) {
	_, opts := withEnv(nil)

	_, err := execute(t, opts, "apply")
	assert.Error(t, err)
}

func TestApplyMissingPlan(t *testing.T) {
	_, opts := withEnv(nil)

	_, err := execute(t, opts, "apply", "does-not-exist.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
