package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ochairo/cookbook/internal/external-adapters/gpg"
)

func runVerify(_ context.Context, args []string, st streams) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	var bf bookFlags
	bf.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: cookbook verify --book <file> --signature <file> --keyring <file>

Check a recipe book's detached OpenPGP signature against trusted public keys.

Options:
`)
		fs.PrintDefaults()
	}

	if code, done := parseFlags(fs, args, st); done {
		return code
	}
	if bf.book == "" || bf.signature == "" || bf.keyring == "" {
		return fail(st, "--book, --signature and --keyring are required")
	}

	v := gpg.NewVerifier()
	if err := v.ImportKeyFromFile(bf.keyring); err != nil {
		return fail(st, "%v", err)
	}

	signer, err := v.VerifyFile(bf.book, bf.signature)
	if err != nil {
		return fail(st, "%v", err)
	}

	fmt.Fprintf(st.out, "✅ Signature OK: %s signed by %s\n", bf.book, signer)
	return 0
}
