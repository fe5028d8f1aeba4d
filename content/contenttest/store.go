// Package contenttest provides an in-memory content store for tests.
package contenttest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/eringen/oyifa/content"
)

// Call records one query received by a Store.
type Call struct {
	Query  string
	Params map[string]any
}

// Store answers the named queries in package content from fixed documents,
// the way the hosted store would: posts newest first, categories by English
// title, null for an unknown slug. Results pass through JSON so decoding is
// exercised the same way as with the real store.
type Store struct {
	Posts      []content.Post
	Categories []content.Category

	// Err, when set, is returned by every query.
	Err error

	mu    sync.Mutex
	calls []Call
}

// Calls returns the queries received so far.
func (s *Store) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Query implements content.Querier.
func (s *Store) Query(ctx context.Context, query string, params map[string]any, result any) error {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Query: query, Params: params})
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Err != nil {
		return s.Err
	}

	var answer any
	switch query {
	case content.QueryAllPosts:
		answer = s.sortedPosts()
	case content.QueryRecentPosts:
		posts := s.sortedPosts()
		if len(posts) > content.RecentPostsLimit {
			posts = posts[:content.RecentPostsLimit]
		}
		answer = posts
	case content.QueryPostBySlug:
		slug, _ := params[content.ParamSlug].(string)
		var found *content.Post
		for i := range s.Posts {
			if s.Posts[i].Slug.Current == slug {
				found = &s.Posts[i]
				break
			}
		}
		answer = found
	case content.QueryAllCategories:
		cats := append([]content.Category(nil), s.Categories...)
		sort.SliceStable(cats, func(i, j int) bool {
			return strings.Compare(cats[i].Title.EN, cats[j].Title.EN) < 0
		})
		answer = cats
	case content.QueryPostsByCategory:
		id, _ := params[content.ParamCategoryID].(string)
		var matched []content.Post
		for _, p := range s.sortedPosts() {
			for _, c := range p.Categories {
				if c.ID == id {
					matched = append(matched, p)
					break
				}
			}
		}
		answer = matched
	default:
		return fmt.Errorf("contenttest: unknown query %q", firstLine(query))
	}

	data, err := json.Marshal(answer)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, result)
}

func (s *Store) sortedPosts() []content.Post {
	posts := append([]content.Post(nil), s.Posts...)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts
}

func firstLine(q string) string {
	line, _, _ := strings.Cut(q, "\n")
	return line
}
