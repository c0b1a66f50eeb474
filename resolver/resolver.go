// Package resolver turns human-readable category paths into the canonical
// category IDs used by the storefront search backend.
//
// # Resolution strategy
//
// The backend's page-type classification service is asked first: it maps a
// slug path straight to a category ID, but it is only trusted when it claims
// the path is a department, category or subcategory page. Any other answer
// (or no answer at all) falls back to walking the category tree, matching
// each level's name against category URLs with both slug normalizers,
// because the classification service has been wrong often enough that its
// non-level answers cannot be taken at face value.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/storewise/category-resolver/catalog"
	"github.com/storewise/category-resolver/slug"
)

// Mode selects the resolution strategy for the storefront platform.
type Mode int

const (
	// ModeClassification asks the page-type classification service first
	// and falls back to tree search. This is the default.
	ModeClassification Mode = iota
	// ModeGeneric skips classification entirely and always resolves via
	// the category tree. Used for platforms without a page-type service.
	ModeGeneric
)

// PathArgs is a partial, ordered category path. Absent trailing levels are
// not searched.
type PathArgs struct {
	Department  string
	Category    string
	Subcategory string
}

// segments returns the present path segments in department-first order.
func (a PathArgs) segments() []string {
	var out []string
	for _, s := range []string{a.Department, a.Category, a.Subcategory} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Source says which strategy produced a match.
type Source string

const (
	SourcePageType Source = "page_type"
	SourceTree     Source = "tree"
)

// Match is a successful resolution. A nil *Match with a nil error means the
// path does not resolve to any category; callers must treat that as a
// legitimate outcome, not an error.
type Match struct {
	CategoryID int
	Source     Source
}

// treeDepth limits tree fetches to the three levels a path can address.
const treeDepth = 3

// TrustedPageTypes are the classification labels accepted as authoritative
// without tree verification.
var TrustedPageTypes = []string{"Department", "Category", "SubCategory"}

// Resolver resolves category paths against one merchant site.
type Resolver struct {
	svc     catalog.CatalogService
	mode    Mode
	sink    DiagnosticSink
	trusted map[string]bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMode sets the resolution strategy.
func WithMode(mode Mode) Option {
	return func(r *Resolver) { r.mode = mode }
}

// WithDiagnosticSink replaces the default log-backed sink.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(r *Resolver) { r.sink = sink }
}

// WithTrustedPageTypes replaces the default trusted label set, for platforms
// with a different page-type vocabulary.
func WithTrustedPageTypes(labels ...string) Option {
	return func(r *Resolver) {
		r.trusted = make(map[string]bool, len(labels))
		for _, l := range labels {
			r.trusted[l] = true
		}
	}
}

func New(svc catalog.CatalogService, opts ...Option) *Resolver {
	r := &Resolver{
		svc:  svc,
		mode: ModeClassification,
		sink: NewLogSink(log.Logger),
	}
	WithTrustedPageTypes(TrustedPageTypes...)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the canonical category ID for a path, or nil when the path
// does not resolve. The only hard failure is an unavailable backend during
// tree fetch; classification problems are absorbed and trigger fallback.
func (r *Resolver) Resolve(ctx context.Context, args PathArgs) (*Match, error) {
	if r.mode == ModeGeneric {
		return r.lookupByTree(ctx, args)
	}

	segments := args.segments()
	if len(segments) == 0 {
		return nil, nil
	}

	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = slug.SearchStyle(seg)
	}
	path := strings.Join(parts, "/")

	pageType, err := r.svc.ClassifyPath(ctx, path)
	switch {
	case err != nil || pageType == nil:
		// Unclassified. Expected for paths the service has never seen.
	case !r.trusted[pageType.PageType]:
		r.sink.Emit("untrusted page type", map[string]any{
			"component":   "resolver",
			"department":  args.Department,
			"category":    args.Category,
			"subcategory": args.Subcategory,
			"path":        path,
			"page_type":   pageType.PageType,
		})
	default:
		return &Match{CategoryID: pageType.ID, Source: SourcePageType}, nil
	}

	return r.lookupByTree(ctx, args)
}

// lookupByTree resolves a path by walking the category tree level by level.
// The department is required; category and subcategory each narrow the match
// to the children of the previous level, and a requested level that fails to
// match voids the whole result rather than returning the partial match.
func (r *Resolver) lookupByTree(ctx context.Context, args PathArgs) (*Match, error) {
	if args.Department == "" {
		return nil, nil
	}

	categories, err := r.svc.FetchCategoryTree(ctx, treeDepth)
	if err != nil {
		return nil, fmt.Errorf("fetch category tree: %w", err)
	}

	node := matchLevel(categories, args.Department)
	if node == nil {
		return nil, nil
	}
	if args.Category != "" {
		node = matchLevel(node.Categories, args.Category)
		if node == nil {
			return nil, nil
		}
		if args.Subcategory != "" {
			node = matchLevel(node.Categories, args.Subcategory)
			if node == nil {
				return nil, nil
			}
		}
	}

	return &Match{CategoryID: node.ID, Source: SourceTree}, nil
}

// ResolveSlugPath resolves a path whose segments are already slugs, for
// example taken straight from a storefront URL, with a single tree descent.
// Unlike Resolve, segments are matched verbatim against URL slugs; no
// normalization is applied.
func (r *Resolver) ResolveSlugPath(ctx context.Context, slugPath []string) (*Match, error) {
	if len(slugPath) == 0 {
		return nil, nil
	}
	categories, err := r.svc.FetchCategoryTree(ctx, len(slugPath))
	if err != nil {
		return nil, fmt.Errorf("fetch category tree: %w", err)
	}
	node := catalog.FindInTree(categories, slugPath)
	if node == nil {
		return nil, nil
	}
	return &Match{CategoryID: node.ID, Source: SourceTree}, nil
}

// CanonicalURL returns the canonical URL for a category ID, or "" when the
// ID is not present in the current tree.
func (r *Resolver) CanonicalURL(ctx context.Context, id int) (string, error) {
	categories, err := r.svc.FetchCategoryTree(ctx, treeDepth)
	if err != nil {
		return "", fmt.Errorf("fetch category tree: %w", err)
	}
	if node, ok := catalog.BuildIndex(categories)[id]; ok {
		return node.URL, nil
	}
	return "", nil
}

// matchLevel returns the first node whose URL ends with "/" followed by any
// normalized form of name, compared case-insensitively. Every candidate slug
// is tried per node before moving on, so sibling order decides ties no
// matter which normalizer produced the matching form.
func matchLevel(categories []catalog.Category, name string) *catalog.Category {
	candidates := slug.Candidates(name)
	for i := range categories {
		url := strings.ToUpper(categories[i].URL)
		for _, candidate := range candidates {
			if strings.HasSuffix(url, "/"+strings.ToUpper(candidate)) {
				return &categories[i]
			}
		}
	}
	return nil
}
