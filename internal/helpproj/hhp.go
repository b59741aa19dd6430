package helpproj

import (
	"strings"

	"git.home.luguber.info/inful/chmbuild/internal/config"
)

// WriteProject writes the help project manifest: an [OPTIONS] block with
// the compiler settings followed by a [FILES] block listing every generated
// file, one backslash-relative path per line.
func WriteProject(files []string, help config.HelpConfig, path string) error {
	search := "No"
	if help.FullTextSearch {
		search = "Yes"
	}

	lines := []string{
		"[OPTIONS]",
		"Compatibility=1.1",
		"Compiled file=" + help.CompiledFile,
		"Contents file=contents.hhc",
		"Default topic=" + help.DefaultTopic,
		"Display compile progress=No",
		"Full-text search=" + search,
		"Language=" + help.Language,
		"Title=" + help.Title,
		"",
		"[FILES]",
	}
	lines = append(lines, files...)
	return writeGBK(path, strings.Join(lines, "\n"))
}
