package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `store_dir = "` + filepath.ToSlash(filepath.Join(dir, "data")) + `"
backend = "` + backend + `"
timezone = "UTC"
ids = "uuid"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, cfgPath, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustAdd(t *testing.T, cfgPath string, words ...string) string {
	t.Helper()
	out, err := run(t, cfgPath, "", append([]string{"add"}, words...)...)
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 3, "unexpected add output %q", out)
	return fields[1]
}

func TestAddAndList(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			cfg := writeConfig(t, backend)

			mustAdd(t, cfg, "  Buy", "milk  ")
			mustAdd(t, cfg, "Walk", "dog")

			out, err := run(t, cfg, "", "list")
			require.NoError(t, err)
			assert.Contains(t, out, "Buy milk")
			assert.Less(t, strings.Index(out, "Walk dog"), strings.Index(out, "Buy milk"), "newest first")
			assert.Contains(t, out, "2 of 2 tasks remaining")

			out, err = run(t, cfg, "", "add", "   ")
			require.NoError(t, err)
			assert.Equal(t, "nothing changed\n", out)

			out, err = run(t, cfg, "", "list")
			require.NoError(t, err)
			assert.Contains(t, out, "2 of 2 tasks remaining")
		})
	}
}

func TestListStripsControlRunes(t *testing.T) {
	cfg := writeConfig(t, "file")
	mustAdd(t, cfg, "clear\x1b[2Jscreen\tnow")

	out, err := run(t, cfg, "", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b")
	assert.Contains(t, out, "clear[2Jscreen now")
}

func TestToggleAndFilter(t *testing.T) {
	cfg := writeConfig(t, "file")
	id := mustAdd(t, cfg, "write", "report")
	mustAdd(t, cfg, "call", "mom")

	out, err := run(t, cfg, "", "toggle", id)
	require.NoError(t, err)
	assert.Equal(t, "toggled "+id+"\n", out)

	out, err = run(t, cfg, "", "list", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "write report")
	assert.NotContains(t, out, "call mom")
	assert.Contains(t, out, "1 of 2 tasks remaining")

	out, err = run(t, cfg, "", "toggle", "missing")
	require.NoError(t, err)
	assert.Equal(t, "nothing changed\n", out)

	_, err = run(t, cfg, "", "list", "--filter", "bogus")
	require.Error(t, err)
}

func TestRemoveNeedsConfirmation(t *testing.T) {
	cfg := writeConfig(t, "file")
	id := mustAdd(t, cfg, "only")

	out, err := run(t, cfg, "n\n", "rm", id)
	require.NoError(t, err)
	assert.Equal(t, "nothing changed\n", out)

	out, err = run(t, cfg, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "only")

	out, err = run(t, cfg, "y\n", "rm", id)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id+"\n", out)

	out, err = run(t, cfg, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks")
}

func TestRemoveAssumeYes(t *testing.T) {
	cfg := writeConfig(t, "sqlite")
	id := mustAdd(t, cfg, "gone")

	out, err := run(t, cfg, "", "rm", "--yes", id)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id+"\n", out)
}

func TestEdit(t *testing.T) {
	cfg := writeConfig(t, "file")
	id := mustAdd(t, cfg, "draft")

	out, err := run(t, cfg, "", "edit", id)
	require.NoError(t, err)
	assert.Equal(t, "nothing changed\n", out, "EOF cancels")

	out, err = run(t, cfg, "   \n", "edit", id)
	require.NoError(t, err)
	assert.Equal(t, "nothing changed\n", out, "blank edit is discarded")

	_, err = run(t, cfg, "final copy\n", "edit", id)
	require.NoError(t, err)

	_, err = run(t, cfg, "", "edit", id, "--text", "  shipped  ")
	require.NoError(t, err)

	out, err = run(t, cfg, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "shipped")
	assert.NotContains(t, out, "final copy")
}

func TestClear(t *testing.T) {
	cfg := writeConfig(t, "file")
	done := mustAdd(t, cfg, "finished")
	mustAdd(t, cfg, "open")

	out, err := run(t, cfg, "y\n", "clear")
	require.NoError(t, err)
	assert.Equal(t, "nothing changed\n", out)

	_, err = run(t, cfg, "", "toggle", done)
	require.NoError(t, err)

	out, err = run(t, cfg, "y\n", "clear")
	require.NoError(t, err)
	assert.Equal(t, "cleared completed tasks\n", out)

	out, err = run(t, cfg, "", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "finished")
	assert.Contains(t, out, "1 of 1 tasks remaining")
}

func TestExportEscapes(t *testing.T) {
	cfg := writeConfig(t, "file")
	mustAdd(t, cfg, "<script>alert(1)</script>")

	out, err := run(t, cfg, "", "export")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")

	file := filepath.Join(t.TempDir(), "tasks.html")
	_, err = run(t, cfg, "", "export", "--filter", "completed", "-o", file)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `class="empty-state"`)
}
