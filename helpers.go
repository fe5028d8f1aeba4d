package oyifa

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/i18n"
)

const maxRelatedPosts = 3

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsoluteURL joins base with an already-formed site path such as
// "/ar/blog/hello/" or "/feed.xml", keeping the path as given.
func AbsoluteURL(base, sitePath string) string {
	return strings.TrimSuffix(base, "/") + sitePath
}

// PostPath returns the site path of the post with the given slug.
func PostPath(slug string, lang i18n.Lang) string {
	return i18n.LocalizePath("/blog/"+url.PathEscape(slug)+"/", lang)
}

// CategoryPath returns the site path of the category with the given slug.
func CategoryPath(slug string, lang i18n.Lang) string {
	return i18n.LocalizePath("/category/"+url.PathEscape(slug)+"/", lang)
}

// RelatedPosts returns up to three posts other than current that share at
// least one category with it, in the order given.
func RelatedPosts(current content.Post, posts []content.Post) []content.Post {
	catSet := make(map[string]struct{}, len(current.Categories))
	for _, c := range current.Categories {
		catSet[c.ID] = struct{}{}
	}
	var related []content.Post
	for _, p := range posts {
		if p.ID == current.ID {
			continue
		}
		for _, c := range p.Categories {
			if _, ok := catSet[c.ID]; ok {
				related = append(related, p)
				break
			}
		}
		if len(related) == maxRelatedPosts {
			break
		}
	}
	return related
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema in lang.
func WebsiteJsonLD(cfg SiteConfig, lang i18n.Lang) string {
	data := map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       cfg.Name,
		"url":        AbsoluteURL(cfg.URL, i18n.LocalizePath("/", lang)),
		"inLanguage": i18n.Tag(lang).String(),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(cfg SiteConfig, post content.Post, lang i18n.Lang) string {
	postURL := AbsoluteURL(cfg.URL, PostPath(post.Slug.Current, lang))
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      content.SelectText(&post.Title, lang),
		"datePublished": post.PublishedAt.Format(time.RFC3339),
		"dateModified":  post.LastModified().Format(time.RFC3339),
		"inLanguage":    i18n.Tag(lang).String(),
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if desc := content.SelectText(post.Excerpt, lang); desc != "" {
		data["description"] = desc
	}
	if img := post.MainImage.URL(); img != "" {
		data["image"] = img
	}
	if post.Author != nil {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  content.SelectText(&post.Author.Name, lang),
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if len(post.Categories) > 0 {
		keywords := make([]string, 0, len(post.Categories))
		for _, c := range post.Categories {
			keywords = append(keywords, content.SelectText(&c.Title, lang))
		}
		data["keywords"] = strings.Join(keywords, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
