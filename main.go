package main

import (
	"errors"
	"os"

	"github.com/tonimelisma/dropbox-share/internal/dropbox"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// A rejected share batch was already reported by runShare; it only
		// reaches here under --strict.
		var shareErr *dropbox.ShareError
		if errors.As(err, &shareErr) {
			os.Exit(1)
		}

		exitOnError(err)
	}
}
