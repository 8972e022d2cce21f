package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mpass/internal/config"
)

type run struct {
	stdout, stderr string
	err            error
}

func execute(t *testing.T, stdin string, args ...string) run {
	t.Helper()
	root := newRootCmd()
	var out, errb bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--color=off"}, args...))
	err := root.Execute()
	return run{stdout: out.String(), stderr: errb.String(), err: err}
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestGenerateSeeded(t *testing.T) {
	inTempDir(t)
	r := execute(t, "", "generate", "--seed", "3", "-n", "3", "W##")
	require.NoError(t, r.err, r.stderr)

	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Regexp(t, `^[A-Z]+[0-9]{2}$`, l)
	}

	again := execute(t, "", "generate", "--seed", "3", "-n", "3", "W##")
	require.NoError(t, again.err)
	assert.Equal(t, r.stdout, again.stdout)
}

func TestRootActsAsGenerate(t *testing.T) {
	inTempDir(t)
	r := execute(t, "", "--seed", "1", "i-w")
	require.ErrorIs(t, r.err, errReported)
	assert.Contains(t, r.stderr, "<spec>:2: error SPC1001")
	assert.Contains(t, r.stderr, "  | i-w\n  |  ^\n")

	r = execute(t, "", "--seed", "1", "i w")
	require.NoError(t, r.err, r.stderr)
	assert.Regexp(t, `^[A-Z][a-z]* [a-z]+\n$`, r.stdout)
}

func TestGenerateJSON(t *testing.T) {
	inTempDir(t)
	r := execute(t, "", "generate", "--format", "json", "--symbols", "!?", "-n", "2", "$$")
	require.NoError(t, r.err, r.stderr)

	var payload struct {
		Spec        string   `json:"spec"`
		Generators  string   `json:"generators"`
		Passphrases []string `json:"passphrases"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &payload))
	assert.Equal(t, "$$", payload.Spec)
	assert.Equal(t, "RTG(2) RTG(2)", payload.Generators)
	require.Len(t, payload.Passphrases, 2)
	for _, p := range payload.Passphrases {
		assert.Regexp(t, regexp.MustCompile(`^[!?]{2}$`), p)
	}
}

func TestCheck(t *testing.T) {
	inTempDir(t)
	r := execute(t, "", "check", "w w")
	require.NoError(t, r.err)
	assert.Equal(t, "ok: \"w w\"\n", r.stdout)

	r = execute(t, "", "check", "??")
	require.ErrorIs(t, r.err, errReported)
	assert.Contains(t, r.stderr, "SPC1002")
	assert.Contains(t, r.stderr, "SPC1003")

	r = execute(t, "", "check", "--format", "json", "wq")
	require.ErrorIs(t, r.err, errReported)
	var report struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &report))
	assert.Equal(t, 1, report.Count)
}

func TestExplainJSON(t *testing.T) {
	inTempDir(t)
	r := execute(t, "", "explain", "--format", "json", "W?#")
	require.NoError(t, r.err, r.stderr)

	var ex struct {
		Shuffle bool `json:"shuffle"`
		Items   []struct {
			Kind       string `json:"kind"`
			Shape      string `json:"shape"`
			Candidates int    `json:"candidates"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &ex))
	assert.True(t, ex.Shuffle)
	require.Len(t, ex.Items, 3)
	assert.Equal(t, 10, ex.Items[2].Candidates)
	assert.Equal(t, "word", ex.Items[0].Shape)
	assert.Empty(t, ex.Items[1].Shape)
	assert.Equal(t, "char", ex.Items[2].Shape)
}

func TestExplainTable(t *testing.T) {
	inTempDir(t)
	r := execute(t, "", "explain", "a#")
	require.NoError(t, r.err, r.stderr)
	assert.Contains(t, r.stdout, "generator")
	assert.Contains(t, r.stdout, "shape")
	assert.Contains(t, r.stdout, "RTG(26)")
	assert.Contains(t, r.stdout, `spec "a#":`)
}

func TestFillFromStdin(t *testing.T) {
	inTempDir(t)
	in := "user=admin\npass=<<admin:W##>>\nagain=<<admin:W##>>\n"
	r := execute(t, in, "fill", "--seed", "9")
	require.NoError(t, r.err, r.stderr)
	m := regexp.MustCompile(`pass=([A-Z]+[0-9]{2})\nagain=([A-Z]+[0-9]{2})\n`).FindStringSubmatch(r.stdout)
	require.NotNil(t, m, r.stdout)
	assert.Equal(t, m[1], m[2])

	r = execute(t, in, "fill", "--list")
	require.NoError(t, r.err)
	assert.Regexp(t, `^admin \(W##\): [A-Z]+[0-9]{2}\n`, r.stdout)

	r = execute(t, "<<x:w!>>", "fill")
	require.ErrorIs(t, r.err, errReported)
	assert.Contains(t, r.stderr, "x@1:2: error SPC1001")
}

func TestInitThenGenerateUsesConfig(t *testing.T) {
	dir := inTempDir(t)
	r := execute(t, "", "init")
	require.NoError(t, r.err)
	assert.Equal(t, "created mpass.toml\n", r.stdout)

	r = execute(t, "", "init")
	require.Error(t, r.err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName),
		[]byte("[generate]\nspec = \"###\"\ncount = 2\n"), 0o600))
	r = execute(t, "", "generate")
	require.NoError(t, r.err, r.stderr)
	assert.Regexp(t, `^[0-9]{3}\n[0-9]{3}\n$`, r.stdout)

	r = execute(t, "", "init", "--force")
	require.NoError(t, r.err)
}

func TestWordsFlag(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	words := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(words, []byte("zebra\nzebra\n"), 0o600))

	r := execute(t, "", "generate", "--words", words, "--cache", "W")
	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, "ZEBRA\n", r.stdout)
	assert.Contains(t, r.stderr, "LST2003")

	r = execute(t, "", "--quiet", "generate", "--words", words, "W")
	require.NoError(t, r.err)
	assert.Empty(t, r.stderr)
}

func TestDropCacheFlag(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	words := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(words, []byte("zebra\n"), 0o600))
	cached := filepath.Join(dir, "cache", "mpass", "lists")

	r := execute(t, "", "generate", "--words", words, "--cache", "w")
	require.NoError(t, r.err, r.stderr)
	entries, err := os.ReadDir(cached)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// без --words кэш только очищается
	r = execute(t, "", "generate", "--drop-cache", "w")
	require.NoError(t, r.err, r.stderr)
	_, err = os.Stat(cached)
	assert.True(t, os.IsNotExist(err), "cache directory should be gone: %v", err)

	r = execute(t, "", "generate", "--words", words, "--drop-cache", "w")
	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, "zebra\n", r.stdout)
	entries, err = os.ReadDir(cached)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTraceToFile(t *testing.T) {
	dir := inTempDir(t)
	out := filepath.Join(dir, "trace.ndjson")
	r := execute(t, "", "--trace", out, "--trace-level", "detail", "generate", "-n", "2", "w")
	require.NoError(t, r.err, r.stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(data)
	for _, name := range []string{`"name":"generate"`, `"name":"compile"`, `"name":"item:1"`} {
		assert.Contains(t, s, name)
	}
}

func TestTraceRingDumpOnFailure(t *testing.T) {
	inTempDir(t)
	r := execute(t, "", "--trace-level", "phase", "--trace-mode", "ring", "generate", "q")
	require.ErrorIs(t, r.err, errReported)
	assert.Contains(t, r.stderr, "trace (last events):")
	assert.Contains(t, r.stderr, "compile")
}

func TestVersionJSON(t *testing.T) {
	r := execute(t, "", "version", "--format", "json")
	require.NoError(t, r.err)
	var v versionPayload
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &v))
	assert.Equal(t, "mpass", v.Tool)
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "ON": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := readUIMode("maybe")
	require.Error(t, err)
	assert.True(t, shouldUseTUI(uiModeOn))
	assert.False(t, shouldUseTUI(uiModeOff))
}

func TestResolveColor(t *testing.T) {
	on, err := resolveColor("auto", true)
	require.NoError(t, err)
	assert.True(t, on)
	on, err = resolveColor("off", true)
	require.NoError(t, err)
	assert.False(t, on)
	_, err = resolveColor("rainbow", false)
	require.Error(t, err)
}

func TestProfilingFlags(t *testing.T) {
	dir := inTempDir(t)
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	r := execute(t, "", "--cpuprofile", cpu, "--memprofile", mem, "generate", "--seed", "1", "w")
	require.NoError(t, r.err, r.stderr)
	for _, p := range []string{cpu, mem} {
		st, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, st.Size(), p)
	}
}
