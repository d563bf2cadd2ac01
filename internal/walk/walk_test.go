package walk

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestFindWalksDirectoryRecursively(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.go":        "package a\n",
		"sub/b.go":    "package b\n",
		"sub/c.txt":   "not go\n",
		".hidden/d.go": "package d\n",
	})

	files, err := Find(Options{Roots: []string{root}})
	require.NoError(t, err)

	var bases []string
	for _, f := range files {
		bases = append(bases, filepath.Base(f))
	}
	sort.Strings(bases)
	assert.Equal(t, []string{"a.go", "b.go", "c.txt"}, bases)
}

func TestFindHonorsInclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.go":  "package a\n",
		"b.txt": "hi\n",
	})

	files, err := Find(Options{Roots: []string{root}, Include: []string{"*.go"}})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.go", filepath.Base(files[0]))
}

func TestFindHonorsExclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.go":      "package a\n",
		"a_test.go": "package a\n",
	})

	files, err := Find(Options{Roots: []string{root}, Exclude: []string{"*_test.go"}})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.go", filepath.Base(files[0]))
}

func TestFindRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore": "ignored.go\n",
		"kept.go":    "package a\n",
		"ignored.go": "package a\n",
	})

	files, err := Find(Options{Roots: []string{root}, RespectGitignore: true})
	require.NoError(t, err)

	var bases []string
	for _, f := range files {
		bases = append(bases, filepath.Base(f))
	}
	sort.Strings(bases)
	assert.Equal(t, []string{"kept.go"}, bases) // .gitignore itself is a hidden file, excluded on its own terms
}
