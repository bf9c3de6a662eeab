// Package clipboard places block content in the system clipboard. Failures
// here are reported as notifications and never touch an existing run result.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy writes text to the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard available on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Available reports whether a system clipboard can be reached.
func Available() bool {
	return !clipboard.Unsupported
}
