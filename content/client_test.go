package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/content/contenttest"
)

func fixture() *contenttest.Store {
	news := content.Category{ID: "cat-news", Title: content.BilingualText{EN: "News", AR: "أخبار"}, Slug: content.Slug{Current: "news"}}
	guides := content.Category{ID: "cat-guides", Title: content.BilingualText{EN: "Guides"}, Slug: content.Slug{Current: "guides"}}
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 9, 0, 0, 0, time.UTC) }
	post := func(slug string, d int, cats ...content.Category) content.Post {
		return content.Post{
			ID:          "post-" + slug,
			Title:       content.BilingualText{EN: slug},
			Slug:        content.Slug{Current: slug},
			PublishedAt: day(d),
			Categories:  cats,
		}
	}
	return &contenttest.Store{
		Posts: []content.Post{
			post("first", 1, news),
			post("fourth", 4, guides),
			post("second", 2, news, guides),
			post("third", 3),
		},
		Categories: []content.Category{news, guides},
	}
}

func slugs(posts []content.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug.Current)
	}
	return out
}

func TestAllPostsNewestFirst(t *testing.T) {
	c := content.NewClient(fixture())
	posts, err := c.AllPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fourth", "third", "second", "first"}, slugs(posts))
}

func TestRecentPostsReturnsThree(t *testing.T) {
	c := content.NewClient(fixture())
	posts, err := c.RecentPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fourth", "third", "second"}, slugs(posts))
}

func TestPostBySlug(t *testing.T) {
	store := fixture()
	c := content.NewClient(store)

	post, found, err := c.PostBySlug(context.Background(), "second")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "post-second", post.ID)
	assert.Len(t, post.Categories, 2)

	calls := store.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, content.QueryPostBySlug, calls[0].Query)
	assert.Equal(t, map[string]any{"slug": "second"}, calls[0].Params)
}

func TestPostBySlugNotFound(t *testing.T) {
	c := content.NewClient(fixture())
	post, found, err := c.PostBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, post.ID)
}

func TestAllCategoriesByEnglishTitle(t *testing.T) {
	c := content.NewClient(fixture())
	cats, err := c.AllCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Guides", cats[0].Title.EN)
	assert.Equal(t, "News", cats[1].Title.EN)

	cat, ok := content.CategoryBySlug(cats, "news")
	require.True(t, ok)
	assert.Equal(t, "cat-news", cat.ID)
	_, ok = content.CategoryBySlug(cats, "nope")
	assert.False(t, ok)
}

func TestPostsByCategory(t *testing.T) {
	store := fixture()
	c := content.NewClient(store)
	posts, err := c.PostsByCategory(context.Background(), "cat-guides")
	require.NoError(t, err)
	assert.Equal(t, []string{"fourth", "second"}, slugs(posts))
	assert.Equal(t, map[string]any{"categoryId": "cat-guides"}, store.Calls()[0].Params)
}

func TestQueryErrorsPropagateUnchanged(t *testing.T) {
	boom := errors.New("store unavailable")
	store := fixture()
	store.Err = boom
	c := content.NewClient(store)
	ctx := context.Background()

	_, err := c.AllPosts(ctx)
	assert.Same(t, boom, err)
	_, _, err = c.PostBySlug(ctx, "first")
	assert.Same(t, boom, err)
	_, err = c.AllCategories(ctx)
	assert.Same(t, boom, err)
	_, err = c.PostsByCategory(ctx, "cat-news")
	assert.Same(t, boom, err)
	_, err = c.RecentPosts(ctx)
	assert.Same(t, boom, err)
}
