// Package orchestrators coordinates workflows across domain services and adapters.
package orchestrators

import (
	"context"
	"errors"
	"fmt"

	"github.com/ochairo/cookbook/internal/domain/entities"
	"github.com/ochairo/cookbook/internal/domain/interfaces"
	"github.com/ochairo/cookbook/internal/domain/interfaces/repositories"
	"github.com/ochairo/cookbook/internal/domain/services"
)

// SignatureVerifier checks a detached signature file over bytes in memory
type SignatureVerifier interface {
	VerifyBytes(data []byte, sigPath string) (string, error)
}

// ImportOptions configures an import
type ImportOptions struct {
	// SignaturePath enables verification of the book's bytes when set
	SignaturePath string
}

// ImportResult lists what an import did, in book order
type ImportResult struct {
	Added   []string
	Skipped []string
	Signer  string
}

// ImportOrchestrator loads recipe books into a RecipeStore
type ImportOrchestrator struct {
	store    *services.RecipeStore
	verifier SignatureVerifier
	logger   interfaces.Logger
}

// NewImportOrchestrator creates an import orchestrator. verifier may be nil
// when signed books are not expected; logger may be nil.
func NewImportOrchestrator(store *services.RecipeStore, verifier SignatureVerifier, logger interfaces.Logger) *ImportOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &ImportOrchestrator{
		store:    store,
		verifier: verifier,
		logger:   logger,
	}
}

// Import verifies the book when a signature is given, then adds every recipe
// in book order. Names already taken are skipped and reported; any other
// failure stops the import and leaves earlier additions in place.
//
// A signed import needs a repositories.RawRecipeBook: its bytes are read once,
// verified, and the same bytes are decoded.
func (o *ImportOrchestrator) Import(ctx context.Context, book repositories.RecipeBook, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	var recipes []*entities.Recipe
	if opts.SignaturePath != "" {
		signer, verified, err := o.loadVerified(ctx, book, opts.SignaturePath)
		if err != nil {
			return nil, err
		}
		result.Signer = signer
		recipes = verified
	} else {
		loaded, err := book.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load recipe book: %w", err)
		}
		recipes = loaded
	}

	for _, r := range recipes {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		_, err := o.store.AddRecipe(r.Name(), r.Ingredients(), r.Steps())
		switch {
		case err == nil:
			result.Added = append(result.Added, r.Name())
			o.logger.Debug("recipe imported", interfaces.F("name", r.Name()))

		case errors.Is(err, entities.ErrDuplicateName):
			result.Skipped = append(result.Skipped, r.Name())
			o.logger.Warn("recipe skipped", interfaces.F("name", r.Name()), interfaces.F("reason", "duplicate"))

		default:
			var nerr *services.NotificationError
			if errors.As(err, &nerr) {
				result.Added = append(result.Added, r.Name())
			}
			return result, fmt.Errorf("import %q: %w", r.Name(), err)
		}
	}

	o.logger.Info("recipe book imported",
		interfaces.F("added", len(result.Added)),
		interfaces.F("skipped", len(result.Skipped)))

	return result, nil
}

func (o *ImportOrchestrator) loadVerified(ctx context.Context, book repositories.RecipeBook, sigPath string) (string, []*entities.Recipe, error) {
	if o.verifier == nil {
		return "", nil, fmt.Errorf("signature given but no keyring configured")
	}

	raw, ok := book.(repositories.RawRecipeBook)
	if !ok {
		return "", nil, fmt.Errorf("recipe book does not expose its bytes for signature checks")
	}

	data, err := raw.ReadRaw(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("load recipe book: %w", err)
	}

	signer, err := o.verifier.VerifyBytes(data, sigPath)
	if err != nil {
		o.logger.Error("recipe book signature rejected",
			interfaces.F("book", raw.Path()),
			interfaces.F("error", err))
		return "", nil, fmt.Errorf("verify %s: %w", raw.Path(), err)
	}
	o.logger.Info("recipe book signature verified",
		interfaces.F("book", raw.Path()),
		interfaces.F("signer", signer))

	recipes, err := raw.Decode(data)
	if err != nil {
		return "", nil, fmt.Errorf("load recipe book: %w", err)
	}

	return signer, recipes, nil
}
