package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name returns the lookup key for a game title or username: surrounding
// whitespace trimmed and case folded.
func Name(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
