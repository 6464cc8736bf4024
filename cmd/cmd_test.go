package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/key"
	"github.com/tesselslate/xwin/window"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestTables(t *testing.T) {
	out, err := execute(t, "tables", "codes")
	require.NoError(t, err)
	assert.Len(t, lines(out), key.CodeCount())
	assert.Regexp(t, `(?m)^0x04\s+A$`, out)

	out, err = execute(t, "tables", "syms")
	require.NoError(t, err)
	assert.Len(t, lines(out), key.SymCount())

	out, err = execute(t, "tables", "atoms")
	require.NoError(t, err)
	assert.Len(t, lines(out), window.AtomCount())
	assert.Regexp(t, `(?m)^2\s+WM_DELETE_WINDOW$`, out)

	out, err = execute(t, "tables", "keycodes")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^38\s+A$`, out)
	assert.Regexp(t, `(?m)^133\s+LeftSuper$`, out)

	out, err = execute(t, "tables")
	require.NoError(t, err)
	for _, name := range tableNames {
		assert.Contains(t, out, "# "+name+"\n")
	}

	_, err = execute(t, "tables", "widgets")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	out, err := execute(t, "new", "main")
	require.NoError(t, err)
	path := filepath.Join(dir, "xwin", "main.toml")
	assert.Equal(t, path+"\n", out)
	assert.FileExists(t, path)

	_, err = execute(t, "new", "main", "--format", "yml")
	assert.Error(t, err)

	_, err = execute(t, "new", "other", "--format", "yml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "xwin", "other.yml"))
	profileFormat = "toml"

	profile, err := loadProfile("other")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "xwin", "other.yml"), profile.Path())
	_, err = loadProfile("missing")
	assert.Error(t, err)
}

func TestLoadDefaultProfile(t *testing.T) {
	profile, err := loadProfile("")
	require.NoError(t, err)
	assert.Empty(t, profile.Path())
	assert.Equal(t, "xwin", profile.Window.Title)
	_, ok := profile.Binds.Lookup(key.SymQ, key.LeftCtrl)
	assert.True(t, ok)
}

func TestProfileName(t *testing.T) {
	name, err := profileName(nil)
	require.NoError(t, err)
	assert.Empty(t, name)

	name, err = profileName([]string{"main"})
	require.NoError(t, err)
	assert.Equal(t, "main", name)

	pickProfile = true
	defer func() { pickProfile = false }()
	_, err = profileName([]string{"main"})
	assert.Error(t, err)
}

func TestFormatEvent(t *testing.T) {
	press := event.KeyPress{Sym: key.SymA, Code: key.CodeA, Text: "A"}
	assert.Equal(t, `KeyPress sym=A code=A text="A"`, formatEvent(press, 0))
	assert.Equal(t, `KeyPress sym=A code=A text="A" mods=left-shift`, formatEvent(press, key.LeftShift))
	assert.Equal(t, "Show", formatEvent(event.Show{}, key.LeftShift))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "xwin "+Version+" "))
}
