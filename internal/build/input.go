package build

import (
	"errors"
	"path/filepath"
	"sort"
)

// ErrNoInput is returned when no outline file was supplied and none could
// be discovered. The CLI maps it to exit code 2.
var ErrNoInput = errors.New("no outline file found in current directory")

// ResolveInput picks the outline file to convert. An explicit path always
// wins; otherwise the lexically first *.md file in the current directory is
// selected so repeated runs pick the same file.
func ResolveInput(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	matches, err := filepath.Glob("*.md")
	if err != nil {
		return "", err
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", ErrNoInput
	}
	return matches[0], nil
}
