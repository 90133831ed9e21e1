package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stack4devs/stack4devs/internal/ports"
)

//go:embed data/*.json
var dataFS embed.FS

// LoadEmbedded returns the catalog compiled into the binary.
func LoadEmbedded() (*Static, error) {
	docs, err := readFS(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}

	return New(docs)
}

// LoadDir reads stacks, tools and usecases documents from dir. Each may be
// .json, .yaml or .yml. Only the stacks document is required.
func LoadDir(dir string) (*Static, error) {
	docs, err := ReadDir(dir)
	if err != nil {
		return nil, err
	}

	return New(docs)
}

// ReadDir validates and decodes the documents in dir without indexing them.
func ReadDir(dir string) (ports.CatalogDocuments, error) {
	docs, err := readFS(os.DirFS(dir), ".")
	if err != nil {
		return ports.CatalogDocuments{}, fmt.Errorf("catalog %s: %w", dir, err)
	}

	return docs, nil
}

var extensions = []string{".json", ".yaml", ".yml"}

func readFS(fsys fs.FS, root string) (ports.CatalogDocuments, error) {
	var docs ports.CatalogDocuments

	for _, kind := range Kinds {
		raw, name, err := findDocument(fsys, root, kind)
		if errors.Is(err, fs.ErrNotExist) && kind != KindStacks {
			continue
		}

		if err != nil {
			return docs, err
		}

		format, _ := FormatFor(name)
		if err := Decode(&docs, kind, raw, format); err != nil {
			return docs, fmt.Errorf("%s: %w", name, err)
		}
	}

	return docs, nil
}

func findDocument(fsys fs.FS, root string, kind Kind) ([]byte, string, error) {
	for _, ext := range extensions {
		name := filepath.ToSlash(filepath.Join(root, string(kind)+ext))

		raw, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		return raw, name, err
	}

	return nil, "", fmt.Errorf("%s document: %w", kind, fs.ErrNotExist)
}
