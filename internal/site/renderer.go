// Package site turns a parsed outline tree into the static HTML mini-site
// consumed by the help compiler: one page per category, subcategory and
// group, an index page, and a shared stylesheet.
package site

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/chmbuild/internal/outline"
)

// Renderer writes the site directory beneath the build directory.
type Renderer struct {
	buildDir string
	title    string // index page title
}

// NewRenderer creates a renderer targeting <buildDir>/site.
func NewRenderer(buildDir, title string) *Renderer {
	return &Renderer{buildDir: filepath.Clean(buildDir), title: title}
}

// Render assigns page names to the whole tree, writes every page plus the
// stylesheet, and returns the written paths relative to the build directory
// in sorted order, using the backslash separators the help project expects.
func (r *Renderer) Render(categories []*outline.Category) ([]string, error) {
	AssignFiles(categories)

	siteDir := filepath.Join(r.buildDir, "site")
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return nil, fmt.Errorf("create site directory: %w", err)
	}

	written := []string{"style.css"}
	if err := writeText(filepath.Join(siteDir, "style.css"), styleCSS); err != nil {
		return nil, err
	}

	if err := r.renderIndex(siteDir, categories); err != nil {
		return nil, err
	}
	written = append(written, "index.html")

	for _, cat := range categories {
		if err := r.renderCategory(siteDir, cat); err != nil {
			return nil, err
		}
		written = append(written, cat.File)
		for _, sub := range cat.Subcategories {
			if err := r.renderSubcategory(siteDir, cat, sub); err != nil {
				return nil, err
			}
			written = append(written, sub.File)
			for _, g := range sub.Groups {
				if err := r.renderGroup(siteDir, cat, sub, g); err != nil {
					return nil, err
				}
				written = append(written, g.File)
			}
		}
	}

	sort.Strings(written)
	paths := make([]string, len(written))
	for i, name := range written {
		paths[i] = `site\` + name
	}
	slog.Info("Site rendered", slog.String("dir", siteDir), slog.Int("pages", len(paths)))
	return paths, nil
}

func (r *Renderer) renderIndex(siteDir string, categories []*outline.Category) error {
	page := listPage{Title: r.title}
	for _, cat := range categories {
		page.Items = append(page.Items, countedLink{Href: cat.File, Name: cat.Title, Groups: cat.GroupCount()})
	}
	return renderPage(filepath.Join(siteDir, "index.html"), "index", page)
}

func (r *Renderer) renderCategory(siteDir string, cat *outline.Category) error {
	page := listPage{Title: cat.Title}
	for _, sub := range cat.Subcategories {
		page.Items = append(page.Items, countedLink{Href: sub.File, Name: sub.Title, Groups: len(sub.Groups)})
	}
	return renderPage(filepath.Join(siteDir, cat.File), "category", page)
}

func (r *Renderer) renderSubcategory(siteDir string, cat *outline.Category, sub *outline.Subcategory) error {
	page := subcategoryPage{
		Title:  sub.Title,
		Parent: link{Href: cat.File, Name: cat.Title},
	}
	for _, g := range sub.Groups {
		page.Links = append(page.Links, link{Href: g.File, Name: g.Title})
	}
	return renderPage(filepath.Join(siteDir, sub.File), "subcategory", page)
}

func (r *Renderer) renderGroup(siteDir string, cat *outline.Category, sub *outline.Subcategory, g *outline.Group) error {
	page := groupPage{
		Title:       g.Title,
		Category:    link{Href: cat.File, Name: cat.Title},
		Subcategory: link{Href: sub.File, Name: sub.Title},
		Block:       "【" + strings.Join(g.Entries, "\n") + "】",
	}
	return renderPage(filepath.Join(siteDir, g.File), "group", page)
}

// renderPage executes a named template and writes the result.
func renderPage(path, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return writeText(path, buf.String())
}

// writeText writes UTF-8 text with CRLF line endings. Every text artifact of
// the build uses CRLF so the files survive the Windows help toolchain.
func writeText(path, content string) error {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\n", "\r\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
