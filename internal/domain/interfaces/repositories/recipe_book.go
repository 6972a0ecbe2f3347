// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/cookbook/internal/domain/entities"
)

// RecipeBook reads and writes a collection of recipes outside the process.
// The in-memory store never calls it on its own; import and export are explicit.
type RecipeBook interface {
	// Load returns every recipe in the book, in book order
	Load(ctx context.Context) ([]*entities.Recipe, error)

	// Save replaces the book contents with recipes, in the given order
	Save(ctx context.Context, recipes []*entities.Recipe) error
}

// RawRecipeBook is a RecipeBook whose stored bytes can be read once and then
// decoded, so a caller can check exactly the bytes it imports
type RawRecipeBook interface {
	RecipeBook

	// Path names where the book is stored
	Path() string

	// ReadRaw returns the stored bytes of the book
	ReadRaw(ctx context.Context) ([]byte, error)

	// Decode parses bytes previously returned by ReadRaw
	Decode(data []byte) ([]*entities.Recipe, error)
}
