package oyifa

import (
	"github.com/a-h/templ"

	"github.com/eringen/oyifa/i18n"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, may be empty
	JSONLD      string // structured data, may be empty
}

// AlternateLink is a hreflang alternate of the current page.
type AlternateLink struct {
	Lang  i18n.Lang
	Label string // language name in its own script
	URL   string
}

// Page is the data every template receives.
type Page struct {
	Site       SiteConfig
	Lang       i18n.Lang
	Dir        string // "ltr" or "rtl"
	Route      string // request path without the locale prefix
	Meta       PageMeta
	Alternates []AlternateLink
}

// T translates a UI string key into the page's language.
func (p Page) T(key string) string {
	return i18n.T(p.Lang, key)
}

// Link returns path (written without a locale prefix) in the page's language.
func (p Page) Link(path string) string {
	return i18n.LocalizePath(path, p.Lang)
}

// Switch returns the alternates other than the page's own language.
func (p Page) Switch() []AlternateLink {
	out := make([]AlternateLink, 0, len(p.Alternates))
	for _, alt := range p.Alternates {
		if alt.Lang != p.Lang {
			out = append(out, alt)
		}
	}
	return out
}

// CategoryBadge is a category link shown on post cards and listings.
type CategoryBadge struct {
	Title string
	Slug  string
	URL   string
	Color string
}

// PostCard is a post summary for listings.
type PostCard struct {
	Title       string
	Slug        string
	URL         string
	Excerpt     string
	Published   string // localized date
	PublishedAt string // RFC 3339, for <time datetime>
	Image       string
	ImageAlt    string
	AuthorName  string
	Categories  []CategoryBadge
}

// AuthorCard is the author box shown under a post.
type AuthorCard struct {
	Name     string
	Image    string
	Bio      templ.Component
	Twitter  string
	LinkedIn string
	Website  string
}

// HomePage is the data for the home page.
type HomePage struct {
	Page
	Recent []PostCard
}

// BlogPage is the data for the post listing.
type BlogPage struct {
	Page
	Posts      []PostCard
	Categories []CategoryBadge
}

// PostPage is the data for a single post.
type PostPage struct {
	Page
	Post           PostCard
	Updated        string // localized, empty unless after Published
	Body           templ.Component
	ReadingMinutes int
	Author         *AuthorCard
	Related        []PostCard
}

// CategoryDetail is the category shown on its listing page.
type CategoryDetail struct {
	CategoryBadge
	Description string
}

// CategoryPage is the data for a category's post listing.
type CategoryPage struct {
	Page
	Category   CategoryDetail
	Posts      []PostCard
	Categories []CategoryBadge
}
