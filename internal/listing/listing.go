package listing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

var (
	// ErrIO marks failures reading a directory or stat-ing one of its entries.
	ErrIO = errors.New("io error")
	// ErrInvalidData marks paths that cannot be rendered as text.
	ErrInvalidData = errors.New("invalid data")
)

// ruleWidth is the width of the rules framing the header
const ruleWidth = 48

// Kind tells the renderer how to style a row
type Kind int

const (
	KindHeader Kind = iota
	KindParent
	KindSelf
	KindDir
	KindFile
)

// Row is one line of the listing. Rows with an empty Target are decoration.
type Row struct {
	Target string
	Width  int
	Text   string
	Kind   Kind
}

// Navigable reports whether activating the row can go anywhere
func (r Row) Navigable() bool {
	return r.Target != ""
}

// Name returns the text used when searching the row
func (r Row) Name() string {
	return strings.TrimSuffix(r.Text, "/")
}

// Listing is the ordered set of rows shown for a directory
type Listing []Row

func (l Listing) Len() int {
	return len(l)
}

func (l Listing) Width(i int) int {
	return l[i].Width
}

// FirstTarget returns the index of the first navigable row, or 0 when there is none
func (l Listing) FirstTarget() int {
	for i, row := range l {
		if row.Navigable() {
			return i
		}
	}
	return 0
}

// Builder produces listings
type Builder struct {
	ShowHidden bool
}

// Build lists dir with hidden entries included
func Build(dir string) (Listing, error) {
	return Builder{ShowHidden: true}.Build(dir)
}

// Build reads dir and returns its header, parent and self rows followed by
// subdirectories and then files, each group sorted by full path.
func (b Builder) Build(dir string) (Listing, error) {
	if !utf8.ValidString(dir) {
		return nil, fmt.Errorf("cannot render %q: %w", dir, ErrInvalidData)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w: %w", dir, ErrIO, err)
	}

	rule := strings.Repeat("=", ruleWidth)
	rows := Listing{
		{Width: ruleWidth, Text: rule, Kind: KindHeader},
		{Width: graphemes(dir), Text: dir, Kind: KindHeader},
		{Width: ruleWidth, Text: rule, Kind: KindHeader},
	}

	if parent := filepath.Dir(dir); parent != dir {
		rows = append(rows, Row{Target: parent, Width: 3, Text: "../", Kind: KindParent})
	}
	rows = append(rows, Row{Target: dir, Width: 2, Text: "./", Kind: KindSelf})

	var dirs, files Listing
	for _, entry := range entries {
		name := entry.Name()
		if !b.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("cannot render entry %q in %s: %w", name, dir, ErrInvalidData)
		}

		itemPath := filepath.Join(dir, name)
		isDir, err := isDirectory(itemPath)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %s: %w: %w", itemPath, ErrIO, err)
		}

		if isDir {
			dirs = append(dirs, Row{Target: itemPath, Width: graphemes(name) + 1, Text: name + "/", Kind: KindDir})
		} else {
			files = append(files, Row{Target: itemPath, Width: graphemes(name), Text: name, Kind: KindFile})
		}
	}

	byTarget := func(a, b Row) int { return strings.Compare(a.Target, b.Target) }
	slices.SortFunc(dirs, byTarget)
	slices.SortFunc(files, byTarget)

	rows = append(rows, dirs...)
	rows = append(rows, files...)
	return rows, nil
}

// isDirectory follows symlinks; a dangling link counts as a file
func isDirectory(path string) (bool, error) {
	linfo, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	if linfo.Mode()&os.ModeSymlink == 0 {
		return linfo.IsDir(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, nil
	}
	return info.IsDir(), nil
}

func graphemes(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
