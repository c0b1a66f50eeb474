package catalog

import "context"

// CatalogService abstracts the storefront backend operations the resolver
// depends on. This interface allows for easy mocking in tests.
type CatalogService interface {
	// FetchCategoryTree fetches the category tree, limited to maxLevels
	// levels of depth. Errors mean the backend is unavailable.
	FetchCategoryTree(ctx context.Context, maxLevels int) ([]Category, error)

	// ClassifyPath classifies a slug path. A nil result with a nil error
	// means the service has no classification for the path.
	ClassifyPath(ctx context.Context, path string) (*PageType, error)
}
