package helpproj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"git.home.luguber.info/inful/chmbuild/internal/config"
	"git.home.luguber.info/inful/chmbuild/internal/outline"
)

func decodeGBK(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	return string(decoded)
}

func tocTree() []*outline.Category {
	return []*outline.Category{{
		Title: "一、人体类",
		File:  "c01.html",
		Subcategories: []*outline.Subcategory{{
			Title: "1. 手臂动作",
			File:  "c01_s01.html",
			Groups: []*outline.Group{{
				Title:   "挥手",
				File:    "g0001.html",
				Entries: []string{"抬起手臂"},
			}},
		}},
	}}
}

func TestWriteContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contents.hhc")
	require.NoError(t, WriteContents(tocTree(), path))

	content := decodeGBK(t, path)
	assert.Contains(t, content, `<OBJECT type="text/site properties">`)
	assert.Contains(t, content, `<param name="Name" value="一、人体类">`)
	assert.Contains(t, content, `<param name="Local" value="site\c01.html">`)
	assert.Contains(t, content, `<param name="Name" value="1. 手臂动作">`)
	assert.Contains(t, content, `<param name="Local" value="site\c01_s01.html">`)
	assert.Contains(t, content, `<param name="Name" value="挥手">`)
	assert.Contains(t, content, `<param name="Local" value="site\g0001.html">`)
	assert.True(t, strings.HasSuffix(strings.TrimRight(content, "\r\n"), "</BODY></HTML>"))
}

func TestWriteContentsNesting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contents.hhc")
	require.NoError(t, WriteContents(tocTree(), path))

	content := decodeGBK(t, path)
	// Category list opens before the subcategory list, which opens before
	// the group object.
	catUL := strings.Index(content, "  <UL>")
	subUL := strings.Index(content, "    <UL>")
	group := strings.Index(content, `value="site\g0001.html"`)
	require.True(t, catUL >= 0 && subUL >= 0 && group >= 0)
	assert.Less(t, catUL, subUL)
	assert.Less(t, subUL, group)
}

func TestWriteContentsEncodedAsGBK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contents.hhc")
	require.NoError(t, WriteContents(tocTree(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	// The category title must not appear as UTF-8 bytes.
	assert.NotContains(t, string(raw), "人体类")
	gbk, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("人体类"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), string(gbk))
	assert.Contains(t, string(raw), "\r\n")
}

func TestWriteProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.hhp")
	files := []string{`site\c01.html`, `site\index.html`, `site\style.css`}
	require.NoError(t, WriteProject(files, config.Default().Help, path))

	content := decodeGBK(t, path)
	lines := strings.Split(strings.TrimRight(content, "\r\n"), "\r\n")
	require.GreaterOrEqual(t, len(lines), 14)
	assert.Equal(t, "[OPTIONS]", lines[0])
	assert.Equal(t, "Compatibility=1.1", lines[1])
	assert.Equal(t, "Compiled file=output.chm", lines[2])
	assert.Equal(t, "Contents file=contents.hhc", lines[3])
	assert.Equal(t, `Default topic=site\index.html`, lines[4])
	assert.Equal(t, "Display compile progress=No", lines[5])
	assert.Equal(t, "Full-text search=Yes", lines[6])
	assert.Equal(t, "Language=0x804 Chinese (PRC)", lines[7])
	assert.Equal(t, "Title=分类细目动词词表", lines[8])
	assert.Equal(t, "", lines[9])
	assert.Equal(t, "[FILES]", lines[10])
	assert.Equal(t, files, lines[11:14])
}

func TestWriteProjectSearchDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.hhp")
	help := config.Default().Help
	help.FullTextSearch = false
	require.NoError(t, WriteProject(nil, help, path))

	content := decodeGBK(t, path)
	assert.Contains(t, content, "Full-text search=No")
}
