package site

import (
	"fmt"

	"git.home.luguber.info/inful/chmbuild/internal/outline"
)

// groupSequence owns the global group page counter. Group pages are
// numbered across the whole tree regardless of category or subcategory, so
// the sequence is a single object threaded through the traversal instead of
// a free-floating counter.
type groupSequence struct {
	next int
}

func (s *groupSequence) alloc() int {
	s.next++
	return s.next
}

// AssignFiles populates every node's page name. Category and subcategory
// names derive from their 1-based positions; group names come from the
// global sequence. Assignment is deterministic and happens in full before
// any file is written.
func AssignFiles(categories []*outline.Category) {
	for ci, cat := range categories {
		cat.File = fmt.Sprintf("c%02d.html", ci+1)
		for si, sub := range cat.Subcategories {
			sub.File = fmt.Sprintf("c%02d_s%02d.html", ci+1, si+1)
		}
	}

	seq := &groupSequence{}
	for _, cat := range categories {
		for _, sub := range cat.Subcategories {
			for _, g := range sub.Groups {
				g.File = fmt.Sprintf("g%04d.html", seq.alloc())
			}
		}
	}
}
