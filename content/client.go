package content

import (
	"context"
)

// Querier runs a query against the content store and decodes the query's
// result into result. A query that matches nothing leaves result at its
// zero value.
type Querier interface {
	Query(ctx context.Context, query string, params map[string]any, result any) error
}

// Client issues the site's named queries. It holds no state besides its
// Querier and is safe for concurrent use. Errors from the Querier are
// returned unchanged.
type Client struct {
	q Querier
}

// NewClient creates a Client over q.
func NewClient(q Querier) *Client {
	return &Client{q: q}
}

// AllPosts returns every post, newest first.
func (c *Client) AllPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.q.Query(ctx, QueryAllPosts, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostBySlug returns the post with the given slug. found is false, with a
// nil error, when no post has that slug.
func (c *Client) PostBySlug(ctx context.Context, slug string) (post Post, found bool, err error) {
	var p *Post
	if err := c.q.Query(ctx, QueryPostBySlug, map[string]any{ParamSlug: slug}, &p); err != nil {
		return Post{}, false, err
	}
	if p == nil {
		return Post{}, false, nil
	}
	return *p, true, nil
}

// AllCategories returns every category ordered by English title.
func (c *Client) AllCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.q.Query(ctx, QueryAllCategories, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// PostsByCategory returns the posts referencing categoryID, newest first.
func (c *Client) PostsByCategory(ctx context.Context, categoryID string) ([]Post, error) {
	var posts []Post
	if err := c.q.Query(ctx, QueryPostsByCategory, map[string]any{ParamCategoryID: categoryID}, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// RecentPosts returns the three newest posts.
func (c *Client) RecentPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.q.Query(ctx, QueryRecentPosts, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CategoryBySlug finds a category among cats by slug.
func CategoryBySlug(cats []Category, slug string) (Category, bool) {
	for _, c := range cats {
		if c.Slug.Current == slug {
			return c, true
		}
	}
	return Category{}, false
}
