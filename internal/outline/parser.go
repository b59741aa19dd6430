package outline

import (
	"bufio"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

const (
	// categorySeparator and categorySuffix identify category headings like
	// "一、人体类". Both are deliberate literal constants; the source corpus
	// uses exactly these characters.
	categorySeparator = "、"
	categorySuffix    = "类"

	// implicitCategoryTitle is synthesized when a subcategory heading shows
	// up before any category heading, so the data is kept instead of dropped.
	implicitCategoryTitle = "未分类"
)

var (
	boldRE           = regexp.MustCompile(`^\*\*(.+)\*\*$`)
	subcategoryRE    = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)
	bareNumberRE     = regexp.MustCompile(`^\d+$`)
	numericHeadingRE = regexp.MustCompile(`^\d+\s+`)
	screenshotRE     = regexp.MustCompile(`^==Screenshot for page\s*\d+==\s*$`)
)

// Result is the outcome of one parse: the recovered tree plus counters for
// anomalies the parser recovered from.
type Result struct {
	Categories []*Category
	// OrphanGroups counts groups dropped because no subcategory was active
	// when they were flushed. Each drop is also logged as a warning.
	OrphanGroups int
	// ImplicitCategories counts synthesized placeholder categories.
	ImplicitCategories int
}

// Parser is a single-pass, stateful line classifier. Lines are matched
// against an ordered rule list (first match wins); there is no lookahead
// and no backtracking.
type Parser struct {
	categories []*Category
	cat        *Category
	sub        *Subcategory

	pendingTitle   string
	pendingEntries []string

	orphanGroups       int
	implicitCategories int
}

// lineRule pairs a name (for tracing) with a handler. A handler returns
// true when it consumed the line; evaluation order is the classification
// precedence, so keep the slice ordered.
type lineRule struct {
	name   string
	handle func(p *Parser, line string) bool
}

var lineRules = []lineRule{
	{"screenshot-marker", (*Parser).skipScreenshotMarker},
	{"bold-page-number", (*Parser).skipBoldPageNumber},
	{"numeric-heading", (*Parser).dropNumericHeading},
	{"category-heading", (*Parser).startCategory},
	{"subcategory-heading", (*Parser).startSubcategory},
	{"group-heading", (*Parser).startGroup},
	{"entry", (*Parser).collectEntry},
}

// NewParser returns a parser with empty state.
func NewParser() *Parser {
	return &Parser{}
}

// Parse consumes the reader line by line and returns the recovered tree.
func Parse(r io.Reader) (*Result, error) {
	p := NewParser()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.feed(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.finish(), nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Result, error) {
	return Parse(strings.NewReader(s))
}

// feed classifies one raw line. Blank lines are ignored outright.
func (p *Parser) feed(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}
	for _, rule := range lineRules {
		if rule.handle(p, line) {
			slog.Debug("line classified", slog.String("rule", rule.name))
			return
		}
	}
}

// finish performs the final flush and hands the tree off.
func (p *Parser) finish() *Result {
	p.flush()
	return &Result{
		Categories:         p.categories,
		OrphanGroups:       p.orphanGroups,
		ImplicitCategories: p.implicitCategories,
	}
}

// boldTitle extracts the trimmed title from a **...** line, or "" when the
// line is not bold.
func boldTitle(line string) string {
	m := boldRE.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func (p *Parser) skipScreenshotMarker(line string) bool {
	return screenshotRE.MatchString(line)
}

// skipBoldPageNumber drops decorative bold page numbers like "**42**".
// Deliberately no flush: the marker is treated as if it were absent, so a
// pending group keeps accumulating entries across it.
func (p *Parser) skipBoldPageNumber(line string) bool {
	title := boldTitle(line)
	return title != "" && bareNumberRE.MatchString(title)
}

// dropNumericHeading discards top-level numeric headings like "10 分类细目".
// The pending group is flushed, but no node is created; entry lines that
// follow attach to nothing until the next group heading.
func (p *Parser) dropNumericHeading(line string) bool {
	title := boldTitle(line)
	if title == "" || !numericHeadingRE.MatchString(title) || subcategoryRE.MatchString(title) {
		return false
	}
	p.flush()
	return true
}

// startCategory begins a new category on headings like "一、人体类".
func (p *Parser) startCategory(line string) bool {
	title := boldTitle(line)
	if title == "" {
		return false
	}
	if !strings.Contains(title, categorySeparator) || !strings.HasSuffix(title, categorySuffix) {
		return false
	}
	if subcategoryRE.MatchString(title) {
		return false
	}
	p.flush()
	p.cat = &Category{Title: title}
	p.categories = append(p.categories, p.cat)
	p.sub = nil
	return true
}

// startSubcategory begins a new subcategory on headings like "1. 手臂动作".
// A placeholder category is synthesized when none is open yet.
func (p *Parser) startSubcategory(line string) bool {
	title := boldTitle(line)
	if title == "" {
		return false
	}
	m := subcategoryRE.FindStringSubmatch(title)
	if m == nil {
		return false
	}
	p.flush()
	if p.cat == nil {
		slog.Warn("subcategory heading before any category, synthesizing placeholder",
			slog.String("subcategory", title))
		p.cat = &Category{Title: implicitCategoryTitle}
		p.categories = append(p.categories, p.cat)
		p.implicitCategories++
	}
	p.sub = &Subcategory{Title: m[1] + ". " + strings.TrimSpace(m[2])}
	p.cat.Subcategories = append(p.cat.Subcategories, p.sub)
	return true
}

// startGroup treats any remaining bold line as a group heading. The title
// stays raw here; normalization happens at flush time.
func (p *Parser) startGroup(line string) bool {
	title := boldTitle(line)
	if title == "" {
		return false
	}
	p.flush()
	p.pendingTitle = title
	p.pendingEntries = nil
	return true
}

// collectEntry appends a normalized entry line to the pending group. Lines
// arriving with no pending group are discarded.
func (p *Parser) collectEntry(line string) bool {
	if p.pendingTitle == "" {
		return true
	}
	if entry := NormalizeEntry(line); entry != "" {
		p.pendingEntries = append(p.pendingEntries, entry)
	}
	return true
}

// flush closes the pending group. Without an active subcategory the group
// has no legal parent; it is dropped with a warning and counted, keeping
// the historic behavior observable instead of silent.
func (p *Parser) flush() {
	if p.pendingTitle == "" {
		p.pendingEntries = nil
		return
	}
	if p.sub == nil {
		p.orphanGroups++
		slog.Warn("dropping group with no enclosing subcategory",
			slog.String("group", p.pendingTitle),
			slog.Int("entries", len(p.pendingEntries)))
	} else {
		p.sub.Groups = append(p.sub.Groups, &Group{
			Title:   NormalizeGroupTitle(p.pendingTitle),
			Entries: p.pendingEntries,
		})
	}
	p.pendingTitle = ""
	p.pendingEntries = nil
}
