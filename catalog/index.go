package catalog

// BuildIndex flattens a category tree into a map keyed by category ID,
// visiting nodes depth-first in pre-order. If two nodes in the tree carry the
// same ID the one visited later overwrites the earlier one; the backend has
// been known to serve such trees and the last-wins behavior is deliberate.
// An empty tree yields an empty map.
func BuildIndex(categories []Category) map[int]*Category {
	index := make(map[int]*Category)
	indexInto(categories, index)
	return index
}

func indexInto(categories []Category, index map[int]*Category) {
	for i := range categories {
		node := &categories[i]
		index[node.ID] = node
		indexInto(node.Categories, index)
	}
}
