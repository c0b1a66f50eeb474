package catalog

import "strings"

// Category is a node in the merchant's category tree. Children are owned by
// their parent; a fetched tree is a plain value with no back-references.
type Category struct {
	ID         int        `json:"id"`
	URL        string     `json:"url"`
	Categories []Category `json:"categories"`
}

// Slug returns the final path segment of the category URL, which is the
// node's locally-unique slug among its siblings.
func (c Category) Slug() string {
	url := strings.TrimSuffix(c.URL, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// Tree is the wire shape of a category tree response.
type Tree struct {
	Categories []Category `json:"categories"`
}

// PageType is the page-type classification service's answer for a path.
type PageType struct {
	ID       int    `json:"id"`
	PageType string `json:"page_type"`
}
