package helpproj

import (
	"html"
	"strings"

	"git.home.luguber.info/inful/chmbuild/internal/outline"
)

// sitemapObject renders one TOC node. Non-root nodes carry a Local param
// pointing at their page, relative to the build dir with backslashes.
func sitemapObject(indent, name, local string) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString("<LI> <OBJECT type=\"text/sitemap\">\n")
	b.WriteString(indent)
	b.WriteString("  <param name=\"Name\" value=\"" + html.EscapeString(name) + "\">\n")
	if local != "" {
		b.WriteString(indent)
		b.WriteString("  <param name=\"Local\" value=\"" + html.EscapeString(local) + "\">\n")
	}
	b.WriteString(indent)
	b.WriteString("</OBJECT>")
	return b.String()
}

// WriteContents writes the nested table of contents mirroring the tree:
// Category → Subcategory → Group, each node linking to its page.
func WriteContents(categories []*outline.Category, path string) error {
	var lines []string
	lines = append(lines,
		"<!DOCTYPE HTML PUBLIC \"-//IETF//DTD HTML//EN\">",
		"<HTML>",
		"<HEAD>",
		"<meta name=\"GENERATOR\" content=\"chmbuild\">",
		"</HEAD><BODY>",
		"<OBJECT type=\"text/site properties\">",
		"  <param name=\"ImageType\" value=\"Folder\">",
		"</OBJECT>",
		"<UL>",
	)

	for _, cat := range categories {
		lines = append(lines, sitemapObject("  ", cat.Title, `site\`+cat.File))
		lines = append(lines, "  <UL>")
		for _, sub := range cat.Subcategories {
			lines = append(lines, sitemapObject("    ", sub.Title, `site\`+sub.File))
			lines = append(lines, "    <UL>")
			for _, g := range sub.Groups {
				lines = append(lines, sitemapObject("      ", g.Title, `site\`+g.File))
			}
			lines = append(lines, "    </UL>")
		}
		lines = append(lines, "  </UL>")
	}

	lines = append(lines, "</UL>", "</BODY></HTML>")
	return writeGBK(path, strings.Join(lines, "\n"))
}
