package listing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navigableTexts(l Listing) []string {
	var texts []string
	for _, row := range l {
		if row.Kind == KindDir || row.Kind == KindFile {
			texts = append(texts, row.Text)
		}
	}
	return texts
}

func TestBuildOrdersDirectoriesBeforeFiles(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "b"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "a"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "z.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "m.txt"), nil, 0644))

	l, err := Build(tempDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a/", "b/", "m.txt", "z.txt"}, navigableTexts(l))
}

func TestBuildHeaderParentAndSelf(t *testing.T) {
	tempDir := t.TempDir()

	l, err := Build(tempDir)
	require.NoError(t, err)
	require.Len(t, l, 5)

	for i := 0; i < 3; i++ {
		assert.Equal(t, KindHeader, l[i].Kind)
		assert.False(t, l[i].Navigable())
	}
	assert.Equal(t, tempDir, l[1].Text)

	assert.Equal(t, KindParent, l[3].Kind)
	assert.Equal(t, filepath.Dir(tempDir), l[3].Target)
	assert.Equal(t, 3, l[3].Width)

	assert.Equal(t, KindSelf, l[4].Kind)
	assert.Equal(t, tempDir, l[4].Target)
	assert.Equal(t, 2, l[4].Width)

	assert.Equal(t, 3, l.FirstTarget())
}

func TestBuildAtRootOmitsParent(t *testing.T) {
	root := string(filepath.Separator)
	l, err := Build(root)
	if err != nil {
		t.Skipf("cannot list %s: %v", root, err)
	}

	for _, row := range l {
		assert.NotEqual(t, KindParent, row.Kind)
	}
	assert.Equal(t, KindSelf, l[3].Kind)
}

func TestBuildWidthsCountGraphemes(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "café"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "日本.txt"), nil, 0644))

	l, err := Build(tempDir)
	require.NoError(t, err)

	widths := map[string]int{}
	for _, row := range l {
		widths[row.Text] = row.Width
	}
	assert.Equal(t, 5, widths["café/"])
	assert.Equal(t, 6, widths["日本.txt"])
}

func TestBuildHiddenEntries(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".hidden"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "shown"), nil, 0644))

	all, err := Build(tempDir)
	require.NoError(t, err)
	assert.Equal(t, []string{".hidden", "shown"}, navigableTexts(all))

	visible, err := Builder{ShowHidden: false}.Build(tempDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"shown"}, navigableTexts(visible))
}

func TestBuildSymlinks(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "real")
	require.NoError(t, os.Mkdir(target, 0755))
	if err := os.Symlink(target, filepath.Join(tempDir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(tempDir, "missing"), filepath.Join(tempDir, "dangling")))

	l, err := Build(tempDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"link/", "real/", "dangling"}, navigableTexts(l))
}

func TestBuildMissingDirectory(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestRowName(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected string
	}{
		{"directory", Row{Text: "src/"}, "src"},
		{"file", Row{Text: "main.go"}, "main.go"},
		{"parent", Row{Text: "../"}, ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.row.Name())
		})
	}
}
