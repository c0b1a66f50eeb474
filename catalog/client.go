package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.storewise.dev"

// ClientOpts configures a storefront backend client.
type ClientOpts struct {
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string
	// SiteID identifies the merchant site whose catalog is queried.
	SiteID string
	// Auth, when set, is sent as the Authorization header on every request.
	Auth string
}

// Client talks to the storefront search backend.
type Client struct {
	httpClient *resty.Client
	siteID     string
	auth       string
}

var _ CatalogService = (*Client)(nil)

func NewClient(opts ClientOpts) *Client {
	baseURL := DefaultBaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	c := Client{siteID: opts.SiteID, auth: opts.Auth}
	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &c
}

func (c *Client) req(ctx context.Context, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetPathParam("siteId", c.siteID)

	if c.auth != "" {
		request.SetHeader("Authorization", c.auth)
	}
	if result != nil {
		request.SetResult(result)
	}

	return request
}

// FetchCategoryTree fetches the category tree limited to maxLevels levels of
// depth. Backend failures are returned to the caller as-is.
func (c *Client) FetchCategoryTree(ctx context.Context, maxLevels int) ([]Category, error) {
	result := &Tree{}

	_, err := handleError(c.req(ctx, result).
		SetQueryParam("levels", strconv.Itoa(maxLevels)).
		Get("/v1/sites/{siteId}/categories"))
	if err != nil {
		return nil, err
	}

	return result.Categories, nil
}

// ClassifyPath asks the page-type classification service what a slug path
// points at. A 404 means the path could not be classified and is reported as
// a nil result, not an error.
func (c *Client) ClassifyPath(ctx context.Context, path string) (*PageType, error) {
	result := &PageType{}

	res, err := c.req(ctx, result).
		SetQueryParam("path", path).
		Get("/v1/sites/{siteId}/page-type")
	if err != nil {
		return nil, err
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if _, err := handleError(res, nil); err != nil {
		return nil, err
	}

	return result, nil
}

// handleError is a generic error handler for failing responses (>399 status
// code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}
