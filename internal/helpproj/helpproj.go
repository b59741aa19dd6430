// Package helpproj emits the two HTML Help Workshop input documents: the
// sitemap table of contents (contents.hhc) and the project manifest
// (project.hhp). Both are pure serializations of the rendered tree; all
// decisions were made upstream.
//
// The help compiler predates Unicode project files, so both documents are
// written in GBK with CRLF line endings. This is a fixed property of the
// target toolchain, not a configuration knob.
package helpproj

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// writeGBK encodes text to GBK with CRLF line endings and writes it.
func writeGBK(path, content string) error {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\n", "\r\n")
	data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
