package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/cookbook/internal/domain/entities"
)

// BookRepository implements repositories.RecipeBook over a single YAML file
type BookRepository struct {
	path   string
	parser *BookParser
}

// NewBookRepository creates a YAML-file recipe book at path
func NewBookRepository(path string) *BookRepository {
	return &BookRepository{
		path:   path,
		parser: NewBookParser(),
	}
}

// Path returns the book file location
func (r *BookRepository) Path() string {
	return r.path
}

// Load reads every recipe from the book file
func (r *BookRepository) Load(ctx context.Context) ([]*entities.Recipe, error) {
	data, err := r.ReadRaw(ctx)
	if err != nil {
		return nil, err
	}

	return r.Decode(data)
}

// ReadRaw reads the book file without parsing it
func (r *BookRepository) ReadRaw(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	//nolint:gosec // G304: path is the recipe book chosen by the user
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("recipe book not found: %s", r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", r.path, err)
	}

	return data, nil
}

// Decode parses book bytes, typically from ReadRaw
func (r *BookRepository) Decode(data []byte) ([]*entities.Recipe, error) {
	recipes, err := r.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return recipes, nil
}

// Save writes recipes to the book file, replacing its contents.
// The file is written to a temporary sibling first and renamed into place.
func (r *BookRepository) Save(ctx context.Context, recipes []*entities.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.parser.Marshal(recipes)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create book directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cookbook-*.yml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	//nolint:errcheck // best-effort cleanup; fails harmlessly after rename
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write recipe book: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write recipe book: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace recipe book: %w", err)
	}

	return nil
}
