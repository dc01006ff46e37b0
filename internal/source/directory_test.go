package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/audwofla/Aramalyze/internal/domain"
	"github.com/audwofla/Aramalyze/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDirectory_LatestPicksGreatestVersion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"14.1.json", "14.2.json", "14.10.json"} {
		touch(t, dir, name, "{}")
	}

	doc, err := source.NewDirectory(dir).Latest()
	require.NoError(t, err)
	assert.Equal(t, "14.10", doc.Patch)
	assert.Equal(t, filepath.Join(dir, "14.10.json"), doc.Path)
}

func TestDirectory_ListIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "14.2.json", "{}")
	touch(t, dir, "13.24.json", "{}")
	touch(t, dir, "latest.json", "{}")
	touch(t, dir, "14.3.yaml", "")
	touch(t, dir, "README.md", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "15.1.json"), 0755))

	docs, err := source.NewDirectory(dir).List()
	require.NoError(t, err)

	patches := make([]string, len(docs))
	for i, d := range docs {
		patches[i] = d.Patch
	}
	assert.Equal(t, []string{"13.24", "14.2"}, patches)
}

func TestDirectory_NoInputFound(t *testing.T) {
	tests := []struct {
		name string
		dir  func(t *testing.T) string
	}{
		{
			name: "empty directory",
			dir:  func(t *testing.T) string { return t.TempDir() },
		},
		{
			name: "missing directory",
			dir:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
		},
		{
			name: "only unrelated files",
			dir: func(t *testing.T) string {
				d := t.TempDir()
				touch(t, d, "notes.json", "{}")
				return d
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.dir(t)
			_, err := source.NewDirectory(dir).Latest()

			var noInput *source.NoInputFoundError
			require.ErrorAs(t, err, &noInput)
			assert.Equal(t, dir, noInput.Dir)
		})
	}
}

func TestDirectory_ForPatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "14.2.json", "{}")
	d := source.NewDirectory(dir)

	doc, err := d.ForPatch("14.2")
	require.NoError(t, err)
	assert.Equal(t, "14.2", doc.Patch)

	_, err = d.ForPatch("14.3")
	var noInput *source.NoInputFoundError
	require.ErrorAs(t, err, &noInput)
	assert.Equal(t, "14.3", noInput.Patch)
}

func TestDirectory_ForPatchRejectsPathsOutsideRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "canonical")
	require.NoError(t, os.Mkdir(root, 0755))
	touch(t, parent, "secret.json", "{}")

	d := source.NewDirectory(root)
	for _, patch := range []string{"../secret", `..\secret`, "a/../../secret", "sub/14.1", "/tmp/14.1", ".", ".."} {
		t.Run(patch, func(t *testing.T) {
			doc, err := d.ForPatch(patch)
			assert.ErrorIs(t, err, domain.ErrInvalidPatch)
			assert.Nil(t, doc)
		})
	}
}

func TestDirectory_LatestBreaksVersionTiesByName(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "14.1.json", "{}")
	touch(t, dir, "14.01.json", "{}")
	touch(t, dir, "13.24.json", "{}")

	d := source.NewDirectory(dir)
	for i := 0; i < 20; i++ {
		doc, err := d.Latest()
		require.NoError(t, err)
		assert.Equal(t, "14.1", doc.Patch)
	}

	docs, err := d.List()
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "14.01", docs[1].Patch)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "14.2.json", `{"champions":{"57":{"id":57}}}`)

	doc, err := source.Read(filepath.Join(dir, "14.2.json"))
	require.NoError(t, err)
	assert.IsType(t, map[string]any{}, doc)

	_, err = source.Read(filepath.Join(dir, "14.3.json"))
	var noInput *source.NoInputFoundError
	require.ErrorAs(t, err, &noInput)
	assert.Equal(t, "14.3", noInput.Patch)

	touch(t, dir, "14.4.json", `{"champions":`)
	_, err = source.Read(filepath.Join(dir, "14.4.json"))
	assert.Error(t, err)
}

func TestPatchFromPath(t *testing.T) {
	assert.Equal(t, "14.10", source.PatchFromPath("/data/canonical/14.10.json"))
	assert.Equal(t, "14.10", source.PatchFromPath("14.10.json"))
}
