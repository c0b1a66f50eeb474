package catalog

import "strings"

// FindInTree matches an ordered list of slug segments against successive
// levels of the tree and returns the node at the deepest requested level, or
// nil if the chain breaks.
//
// At each level the first sibling whose URL slug equals the current segment
// (case-insensitively) is taken; siblings after it are never revisited, so if
// the descent fails below the chosen sibling the whole search fails even when
// a later sibling with the same slug would have matched. Sibling order from
// the fetched tree is the only tie-break.
func FindInTree(categories []Category, slugPath []string) *Category {
	if len(slugPath) == 0 {
		return nil
	}
	return findAtLevel(categories, slugPath, 0)
}

func findAtLevel(categories []Category, slugPath []string, level int) *Category {
	for i := range categories {
		node := &categories[i]
		if !strings.EqualFold(node.Slug(), slugPath[level]) {
			continue
		}
		if level == len(slugPath)-1 {
			return node
		}
		return findAtLevel(node.Categories, slugPath, level+1)
	}
	return nil
}
