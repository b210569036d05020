package report

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether output to f should be styled.
//
// Returns false if:
//   - NO_COLOR is set (https://no-color.org)
//   - DEPMAP_NO_COLOR=1 is set
//   - f is not a terminal (piped output, CI logs)
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("DEPMAP_NO_COLOR") == "1" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
