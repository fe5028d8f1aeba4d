package oyifa

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/i18n"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://oyifa.com", nil, "https://oyifa.com"},
		{"https://oyifa.com", []string{"blog", "hello"}, "https://oyifa.com/blog/hello/"},
		{"https://oyifa.com/", []string{"ar", "blog"}, "https://oyifa.com/ar/blog/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestPaths(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{PostPath("hello", i18n.EN), "/blog/hello/"},
		{PostPath("hello", i18n.AR), "/ar/blog/hello/"},
		{CategoryPath("news", i18n.AR), "/ar/category/news/"},
		{AbsoluteURL("https://oyifa.com/", "/feed.xml"), "https://oyifa.com/feed.xml"},
		{AbsoluteURL("https://oyifa.com", "/ar/"), "https://oyifa.com/ar/"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestRelatedPosts(t *testing.T) {
	news := content.Category{ID: "news"}
	guides := content.Category{ID: "guides"}
	current := content.Post{ID: "a", Categories: []content.Category{news}}
	posts := []content.Post{
		current,
		{ID: "b", Categories: []content.Category{guides}},
		{ID: "c", Categories: []content.Category{guides, news}},
		{ID: "d", Categories: []content.Category{news}},
		{ID: "e", Categories: []content.Category{news}},
		{ID: "f", Categories: []content.Category{news}},
	}
	related := RelatedPosts(current, posts)
	var ids []string
	for _, p := range related {
		ids = append(ids, p.ID)
	}
	if len(ids) != 3 || ids[0] != "c" || ids[1] != "d" || ids[2] != "e" {
		t.Errorf("RelatedPosts = %v, want [c d e]", ids)
	}
	if got := RelatedPosts(content.Post{ID: "x"}, posts); len(got) != 0 {
		t.Errorf("RelatedPosts without categories = %d posts, want 0", len(got))
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Oyifa", URL: "https://oyifa.com"}
	post := content.Post{
		Title:       content.BilingualText{EN: "Hello", AR: "مرحبا"},
		Slug:        content.Slug{Current: "hello"},
		Author:      &content.Author{Name: content.BilingualText{EN: "Layla"}},
		Categories:  []content.Category{{Title: content.BilingualText{EN: "News", AR: "أخبار"}}},
		PublishedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(BlogPostingJsonLD(cfg, post, i18n.AR)), &data); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	checks := map[string]string{
		"headline":      "مرحبا",
		"inLanguage":    "ar",
		"url":           "https://oyifa.com/ar/blog/hello/",
		"datePublished": "2024-03-05T10:00:00Z",
		"keywords":      "أخبار",
	}
	for k, want := range checks {
		if got, _ := data[k].(string); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
	author, _ := data["author"].(map[string]any)
	if author["name"] != "Layla" {
		t.Errorf("author = %v, want Layla (English fallback)", author)
	}
	if _, ok := data["image"]; ok {
		t.Error("image set for a post without a main image")
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	var data map[string]any
	if err := json.Unmarshal([]byte(WebsiteJsonLD(SiteConfig{Name: "Oyifa", URL: "https://oyifa.com"}, i18n.AR)), &data); err != nil {
		t.Fatal(err)
	}
	if data["url"] != "https://oyifa.com/ar/" || data["inLanguage"] != "ar" {
		t.Errorf("WebsiteJsonLD = %v", data)
	}
	if _, ok := data["description"]; ok {
		t.Error("empty description should be omitted")
	}
}

func TestUpdatedDate(t *testing.T) {
	pub := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		updated time.Time
		want    string
	}{
		{time.Time{}, ""},
		{pub.Add(2 * time.Hour), ""},
		{pub.Add(-time.Hour), ""},
		{pub.AddDate(0, 0, 3), "March 8, 2024"},
	}
	for _, tt := range tests {
		p := content.Post{PublishedAt: pub, UpdatedAt: tt.updated}
		if got := updatedDate(p, i18n.EN); got != tt.want {
			t.Errorf("updatedDate(%v) = %q, want %q", tt.updated, got, tt.want)
		}
	}
}

func TestExcludedFromSitemap(t *testing.T) {
	tests := map[string]bool{
		"/":                 false,
		"/blog/hello/":      false,
		"/ar/blog/hello/":   false,
		"/api/posts":        true,
		"/blog/api/":        true,
		"/_astro/app.js":    true,
		"/ar/admin/":        true,
		"/category/admins/": false,
	}
	for path, want := range tests {
		if got := excludedFromSitemap(path); got != want {
			t.Errorf("excludedFromSitemap(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestFeedLanguage(t *testing.T) {
	a := &App{Config: SiteConfig{Name: "Oyifa", URL: "https://oyifa.com"}}
	posts := []content.Post{{
		Title:       content.BilingualText{EN: "Hello"},
		Slug:        content.Slug{Current: "hello"},
		PublishedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}}
	feed := a.feed(i18n.AR, posts)
	if feed.Channel.Language != "ar" || feed.Channel.Link != "https://oyifa.com/ar/" {
		t.Errorf("channel = %+v", feed.Channel)
	}
	if len(feed.Channel.Items) != 1 || feed.Channel.Items[0].Title != "Hello" ||
		feed.Channel.Items[0].Link != "https://oyifa.com/ar/blog/hello/" {
		t.Errorf("items = %+v", feed.Channel.Items)
	}
	if feed.Channel.Items[0].PubDate != "Tue, 05 Mar 2024 10:00:00 +0000" {
		t.Errorf("pubDate = %q", feed.Channel.Items[0].PubDate)
	}
}
