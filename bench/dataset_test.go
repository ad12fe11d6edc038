package bench

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, id := range []string{"1", "2", "10", "alpha"} {
		writeFile(t, filepath.Join(dir, "text"+id+".txt"), "text "+id)
		writeFile(t, filepath.Join(dir, "pattern"+id+".txt"), "pattern "+id)
	}
	writeFile(t, filepath.Join(dir, "text3.txt"), "lonely text")
	writeFile(t, filepath.Join(dir, "pattern4.txt"), "lonely pattern")
	writeFile(t, filepath.Join(dir, "notes.md"), "ignored")

	got, err := Discover(dir, "text*.txt", "pattern*.txt")
	require.NoError(t, err)

	ids := make([]string, len(got))
	for i, ds := range got {
		ids[i] = ds.ID
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "10", "alpha"}, ids)

	assert.Equal(t, Dataset{
		ID:      "10",
		Text:    filepath.Join(dir, "text10.txt"),
		Pattern: filepath.Join(dir, "pattern10.txt"),
	}, got[4])
	assert.Equal(t, filepath.Join(dir, "pattern3.txt"), got[2].Pattern, "missing partner keeps its expected path")
	assert.Equal(t, filepath.Join(dir, "text4.txt"), got[3].Text)
}

func TestDiscoverDirWithGlobChars(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data[1]")
	writeFile(t, filepath.Join(dir, "text1.txt"), "abc")
	writeFile(t, filepath.Join(dir, "pattern1.txt"), "b")

	got, err := Discover(dir, "text*.txt", "pattern*.txt")
	require.NoError(t, err)
	assert.Equal(t, []Dataset{{
		ID:      "1",
		Text:    filepath.Join(dir, "text1.txt"),
		Pattern: filepath.Join(dir, "pattern1.txt"),
	}}, got)
}

func TestDiscoverBadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "text1.txt"), "abc")

	_, err := Discover(dir, "text[*.txt", "pattern*.txt")
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}

func TestDiscoverEmpty(t *testing.T) {
	_, err := Discover(t.TempDir(), "text*.txt", "pattern*.txt")
	assert.ErrorIs(t, err, ErrNoDatasets)
}

func TestResolveExplicit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"
	cfg.Datasets = []Dataset{
		{ID: "a", Text: "a.txt", Pattern: "/elsewhere/a.pat"},
	}
	got, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []Dataset{{ID: "a", Text: filepath.Join("/data", "a.txt"), Pattern: "/elsewhere/a.pat"}}, got)
	assert.Equal(t, "a.txt", cfg.Datasets[0].Text, "Resolve must not modify the config")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	ds := Dataset{ID: "1", Text: filepath.Join(dir, "t.txt"), Pattern: filepath.Join(dir, "p.txt")}
	writeFile(t, ds.Text, "  ABABDABACDABABCABAB\n")
	writeFile(t, ds.Pattern, "ABABCABAB\n")

	text, pattern, err := Load(ds, true)
	require.NoError(t, err)
	assert.Equal(t, "ABABDABACDABABCABAB", text)
	assert.Equal(t, "ABABCABAB", pattern)

	text, _, err = Load(ds, false)
	require.NoError(t, err)
	assert.Equal(t, "  ABABDABACDABABCABAB\n", text)

	ds.Pattern = filepath.Join(dir, "missing.txt")
	_, _, err = Load(ds, true)
	assert.ErrorIs(t, err, ErrIncompletePair)
}

func TestIDLess(t *testing.T) {
	assert.True(t, idLess("2", "10"))
	assert.False(t, idLess("10", "2"))
	assert.True(t, idLess("9", "a"))
	assert.False(t, idLess("a", "9"))
	assert.True(t, idLess("a", "b"))
}
