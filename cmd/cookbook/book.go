package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	orchestrators "github.com/ochairo/cookbook/internal/domain-orchestrators"
	"github.com/ochairo/cookbook/internal/domain/interfaces"
	"github.com/ochairo/cookbook/internal/domain/services"
	"github.com/ochairo/cookbook/internal/external-adapters/gpg"
	"github.com/ochairo/cookbook/internal/external-adapters/yaml"
)

// bookFlags are shared by every command that reads a recipe book
type bookFlags struct {
	book      string
	signature string
	keyring   string
	verbose   bool
}

func (b *bookFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&b.book, "book", "", "Path to a YAML recipe book")
	fs.StringVar(&b.signature, "signature", "", "Detached OpenPGP signature of the recipe book")
	fs.StringVar(&b.keyring, "keyring", "", "Public keys trusted to sign recipe books")
	fs.BoolVar(&b.verbose, "verbose", false, "Log debug details to stderr")
}

func (b *bookFlags) logger(w io.Writer) interfaces.Logger {
	level := interfaces.LevelWarn
	if b.verbose {
		level = interfaces.LevelDebug
	}
	return interfaces.NewWriterLogger(w, level)
}

// importBook loads the configured book into store, verifying it first when
// a signature is given
func (b *bookFlags) importBook(ctx context.Context, store *services.RecipeStore, logger interfaces.Logger) (*orchestrators.ImportResult, error) {
	var verifier orchestrators.SignatureVerifier
	if b.keyring != "" {
		v := gpg.NewVerifier()
		if err := v.ImportKeyFromFile(b.keyring); err != nil {
			return nil, err
		}
		if v.KeyringSize() == 0 {
			return nil, fmt.Errorf("keyring %s holds no public keys", b.keyring)
		}
		logger.Debug("keyring loaded", interfaces.F("keyring", b.keyring), interfaces.F("keys", v.KeyringSize()))
		verifier = v
	}

	orch := orchestrators.NewImportOrchestrator(store, verifier, logger)
	return orch.Import(ctx, yaml.NewBookRepository(b.book), orchestrators.ImportOptions{
		SignaturePath: b.signature,
	})
}

// parseFlags parses args, printing errors to st.err. done reports that the
// command should stop with code.
func parseFlags(fs *flag.FlagSet, args []string, st streams) (code int, done bool) {
	fs.SetOutput(st.err)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, true
		}
		return 2, true
	}
	return 0, false
}

func fail(st streams, format string, args ...any) int {
	fmt.Fprintf(st.err, "Error: "+format+"\n", args...)
	return 1
}
