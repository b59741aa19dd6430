// Package outline recovers a Category → Subcategory → Group → Entry tree
// from a loosely structured glossary outline. The source convention is a
// flat line sequence where bold markers carry headings and plain lines
// carry entries; classification is heuristic and recovers from missing
// structure instead of rejecting it.
package outline

// Category is a top-level glossary section.
type Category struct {
	Title         string
	Subcategories []*Subcategory
	File          string // page name, assigned by the site renderer
}

// Subcategory is a numbered section inside a Category. The title keeps the
// ordinal exactly as seen in the source ("N. Name"); it is never re-derived.
type Subcategory struct {
	Title  string
	Groups []*Group
	File   string
}

// Group is a verb-phrase group with its member entries in source order.
type Group struct {
	Title   string
	Entries []string
	File    string
}

// GroupCount returns the number of groups across all subcategories.
func (c *Category) GroupCount() int {
	n := 0
	for _, sub := range c.Subcategories {
		n += len(sub.Groups)
	}
	return n
}

// Stats summarizes node counts for a parsed tree.
type Stats struct {
	Categories    int
	Subcategories int
	Groups        int
	Entries       int
}

// CountNodes walks the tree and tallies nodes at every level.
func CountNodes(categories []*Category) Stats {
	var s Stats
	s.Categories = len(categories)
	for _, cat := range categories {
		s.Subcategories += len(cat.Subcategories)
		for _, sub := range cat.Subcategories {
			s.Groups += len(sub.Groups)
			for _, g := range sub.Groups {
				s.Entries += len(g.Entries)
			}
		}
	}
	return s
}
