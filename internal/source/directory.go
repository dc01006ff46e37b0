// Package source finds canonical patch documents on disk.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/audwofla/Aramalyze/internal/canonical"
	"github.com/audwofla/Aramalyze/internal/domain"
)

const documentExt = ".json"

// NoInputFoundError reports that no canonical document exists where one was
// expected.
type NoInputFoundError struct {
	Dir   string
	Patch string
}

func (e *NoInputFoundError) Error() string {
	if e.Patch != "" {
		return fmt.Sprintf("no canonical document for patch %s in %s", e.Patch, e.Dir)
	}
	return fmt.Sprintf("no *%s canonical documents found in %s", documentExt, e.Dir)
}

// Document addresses one canonical document.
type Document struct {
	Patch string
	Path  string
}

type Directory struct {
	root string
}

func NewDirectory(root string) *Directory {
	return &Directory{root: root}
}

func (d *Directory) Root() string {
	return d.root
}

// List returns every document whose file name is a patch version, oldest
// first. Other files are ignored.
func (d *Directory) List() ([]Document, error) {
	entries, err := os.ReadDir(d.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read canonical dir: %w", err)
	}

	type candidate struct {
		doc     Document
		version domain.Version
	}
	var candidates []candidate
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != documentExt {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), documentExt)
		v, err := domain.ParseVersion(stem)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			doc:     Document{Patch: stem, Path: filepath.Join(d.root, e.Name())},
			version: v,
		})
	}

	// 14.01 and 14.1 compare equal; the file name keeps the order stable.
	sort.Slice(candidates, func(i, j int) bool {
		if c := candidates[i].version.Compare(candidates[j].version); c != 0 {
			return c < 0
		}
		return candidates[i].doc.Patch < candidates[j].doc.Patch
	})

	docs := make([]Document, len(candidates))
	for i, c := range candidates {
		docs[i] = c.doc
	}
	return docs, nil
}

// Latest returns the document with the greatest patch version.
func (d *Directory) Latest() (*Document, error) {
	docs, err := d.List()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, &NoInputFoundError{Dir: d.root}
	}
	latest := docs[len(docs)-1]
	return &latest, nil
}

// ForPatch returns <root>/<patch>.json if it exists. patch must be a plain
// file stem; anything that would resolve outside root is ErrInvalidPatch.
func (d *Directory) ForPatch(patch string) (*Document, error) {
	if err := validStem(patch); err != nil {
		return nil, err
	}

	path := filepath.Join(d.root, patch+documentExt)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NoInputFoundError{Dir: d.root, Patch: patch}
		}
		return nil, fmt.Errorf("stat canonical document: %w", err)
	}
	return &Document{Patch: patch, Path: path}, nil
}

func validStem(patch string) error {
	if patch == "" || patch == "." || strings.Contains(patch, "..") ||
		strings.ContainsAny(patch, `/\`) || filepath.Base(patch) != patch {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPatch, patch)
	}
	return nil
}

// PatchFromPath derives the patch identifier from a document file name.
func PatchFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Read parses the document at path.
func Read(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NoInputFoundError{Dir: filepath.Dir(path), Patch: PatchFromPath(path)}
		}
		return nil, fmt.Errorf("open canonical document: %w", err)
	}
	defer f.Close()

	return canonical.Decode(f)
}
