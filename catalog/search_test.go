package catalog

import (
	"testing"
)

func TestFindInTree_SimpleDescent(t *testing.T) {
	tree := []Category{
		{ID: 1, URL: "/shoes", Categories: []Category{
			{ID: 2, URL: "/shoes/sneakers"},
		}},
	}

	node := FindInTree(tree, []string{"shoes", "sneakers"})
	if node == nil {
		t.Fatal("expected a match")
	}
	if node.ID != 2 {
		t.Errorf("expected id 2, got %d", node.ID)
	}
}

func TestFindInTree_CaseInsensitive(t *testing.T) {
	tree := []Category{
		{ID: 1, URL: "/Shoes", Categories: []Category{
			{ID: 2, URL: "/Shoes/Sneakers"},
		}},
	}

	node := FindInTree(tree, []string{"SHOES", "sneakers"})
	if node == nil || node.ID != 2 {
		t.Fatalf("expected id 2, got %+v", node)
	}
}

func TestFindInTree_PartialDepth(t *testing.T) {
	tree := []Category{
		{ID: 1, URL: "/shoes", Categories: []Category{
			{ID: 2, URL: "/shoes/sneakers"},
		}},
	}

	// A shorter path stops at the matched level.
	node := FindInTree(tree, []string{"shoes"})
	if node == nil || node.ID != 1 {
		t.Fatalf("expected id 1, got %+v", node)
	}
}

func TestFindInTree_NoMatch(t *testing.T) {
	tree := []Category{
		{ID: 1, URL: "/shoes", Categories: []Category{
			{ID: 2, URL: "/shoes/sneakers"},
		}},
	}

	if node := FindInTree(tree, []string{"apparel"}); node != nil {
		t.Errorf("expected no match, got id %d", node.ID)
	}
	if node := FindInTree(tree, []string{"shoes", "boots"}); node != nil {
		t.Errorf("expected no match, got id %d", node.ID)
	}
	if node := FindInTree(tree, nil); node != nil {
		t.Errorf("expected no match for empty path, got id %d", node.ID)
	}
}

func TestFindInTree_FirstSiblingWinsWithoutBacktracking(t *testing.T) {
	// Two siblings share the slug "shoes". The first one lacks the
	// requested child, and the search must not retry the second sibling.
	tree := []Category{
		{ID: 1, URL: "/kids/shoes", Categories: []Category{
			{ID: 2, URL: "/kids/shoes/sandals"},
		}},
		{ID: 3, URL: "/sale/shoes", Categories: []Category{
			{ID: 4, URL: "/sale/shoes/sneakers"},
		}},
	}

	if node := FindInTree(tree, []string{"shoes", "sneakers"}); node != nil {
		t.Errorf("expected descent to fail at first sibling, got id %d", node.ID)
	}

	// The first sibling's own children are still reachable.
	node := FindInTree(tree, []string{"shoes", "sandals"})
	if node == nil || node.ID != 2 {
		t.Fatalf("expected id 2, got %+v", node)
	}
}

func TestCategorySlug(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/shoes/sneakers", "sneakers"},
		{"/shoes", "shoes"},
		{"/shoes/", "shoes"},
		{"shoes", "shoes"},
		{"", ""},
	}
	for _, tt := range tests {
		got := Category{URL: tt.url}.Slug()
		if got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
