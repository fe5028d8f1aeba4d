package views

import (
	"bytes"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/oyifa"
	"github.com/eringen/oyifa/portabletext"
)

func esc(s string) string { return templ.EscapeString(s) }

// href escapes a link for an attribute, dropping anything that is not a
// relative, http(s), mailto or tel URL.
func href(u string) string { return portabletext.SafeURL(u) }

func head(buf *bytes.Buffer, p oyifa.Page) {
	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString(`<html lang="` + esc(string(p.Lang)) + `" dir="` + esc(p.Dir) + "\">\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	buf.WriteString("<title>" + esc(p.Meta.Title) + "</title>\n")
	if p.Meta.Description != "" {
		buf.WriteString(`<meta name="description" content="` + esc(p.Meta.Description) + "\">\n")
	}
	buf.WriteString(`<link rel="canonical" href="` + href(p.Meta.URL) + "\">\n")
	for _, alt := range p.Alternates {
		buf.WriteString(`<link rel="alternate" hreflang="` + esc(string(alt.Lang)) + `" href="` + href(alt.URL) + "\">\n")
	}
	buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(p.Site.Name) + `" href="` + href(p.Link("/feed.xml")) + "\">\n")
	buf.WriteString(`<meta property="og:title" content="` + esc(p.Meta.Title) + "\">\n")
	buf.WriteString(`<meta property="og:type" content="` + esc(p.Meta.OGType) + "\">\n")
	buf.WriteString(`<meta property="og:url" content="` + href(p.Meta.URL) + "\">\n")
	if p.Meta.Description != "" {
		buf.WriteString(`<meta property="og:description" content="` + esc(p.Meta.Description) + "\">\n")
	}
	if img := href(p.Meta.Image); img != "" {
		buf.WriteString(`<meta property="og:image" content="` + img + "\">\n")
	}
	buf.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\">\n")
	// JSON-LD comes from encoding/json, which escapes '<', so the document
	// cannot close the script element early.
	if strings.TrimSpace(p.Meta.JSONLD) != "" {
		buf.WriteString(`<script type="application/ld+json">` + p.Meta.JSONLD + "</script>\n")
	}
	buf.WriteString("</head>\n<body>\n<header class=\"site-header\">\n")
	buf.WriteString(`<a class="brand" href="` + href(p.Link("/")) + `">` + esc(p.Site.Name) + "</a>\n<nav>\n")
	buf.WriteString(`<a href="` + href(p.Link("/")) + `">` + esc(p.T("nav.home")) + "</a>\n")
	buf.WriteString(`<a href="` + href(p.Link("/blog/")) + `">` + esc(p.T("nav.blog")) + "</a>\n")
	for _, alt := range p.Switch() {
		lang := esc(string(alt.Lang))
		buf.WriteString(`<a class="lang-switch" href="` + href(alt.URL) + `" hreflang="` + lang + `" lang="` + lang +
			`" title="` + esc(p.T("nav.switch")) + `">` + esc(alt.Label) + "</a>")
	}
	buf.WriteString("\n</nav>\n</header>\n<main>\n")
}

func foot(buf *bytes.Buffer, p oyifa.Page) {
	buf.WriteString("</main>\n<footer class=\"site-footer\">\n")
	buf.WriteString("<p>&copy; " + time.Now().Format("2006") + " " + esc(p.Site.Name) + ". " + esc(p.T("footer.rights")) + "</p>\n")
	buf.WriteString("</footer>\n</body>\n</html>\n")
}

// cards writes a card per post, or the empty-listing message.
func cards(buf *bytes.Buffer, p oyifa.Page, posts []oyifa.PostCard) {
	if len(posts) == 0 {
		buf.WriteString("<p>" + esc(p.T("blog.empty")) + "</p>\n")
		return
	}
	for _, c := range posts {
		card(buf, c)
	}
}

func card(buf *bytes.Buffer, c oyifa.PostCard) {
	link := href(c.URL)
	buf.WriteString("<article class=\"post-card\">\n")
	if src := href(c.Image); src != "" {
		buf.WriteString(`<a href="` + link + `"><img class="cover" src="` + src + `" alt="` + esc(c.ImageAlt) + "\" loading=\"lazy\"></a>\n")
	}
	buf.WriteString(`<h2><a href="` + link + `">` + esc(c.Title) + "</a></h2>\n<p class=\"meta\">")
	if c.PublishedAt != "" {
		buf.WriteString(`<time datetime="` + esc(c.PublishedAt) + `">` + esc(c.Published) + "</time>")
	}
	if c.AuthorName != "" {
		buf.WriteString(" · " + esc(c.AuthorName))
	}
	buf.WriteString("</p>\n")
	if c.Excerpt != "" {
		buf.WriteString("<p>" + esc(c.Excerpt) + "</p>\n")
	}
	badges(buf, c.Categories)
	buf.WriteString("</article>\n")
}

func badges(buf *bytes.Buffer, cats []oyifa.CategoryBadge) {
	if len(cats) == 0 {
		return
	}
	buf.WriteString(`<ul class="badges">`)
	for _, b := range cats {
		buf.WriteString(`<li><a class="badge" href="` + href(b.URL) + `"`)
		if isHexColor(b.Color) {
			buf.WriteString(` style="color: ` + b.Color + `"`)
		}
		buf.WriteString(">" + esc(b.Title) + "</a></li>")
	}
	buf.WriteString("</ul>\n")
}

// categoryNav writes the category filter. active is the current
// category's slug, or "" on the unfiltered listing.
func categoryNav(buf *bytes.Buffer, p oyifa.Page, cats []oyifa.CategoryBadge, active string) {
	buf.WriteString(`<nav aria-label="` + esc(p.T("blog.categories")) + "\">\n<ul class=\"badges\">\n")
	buf.WriteString(`<li><a class="` + badgeClass(active == "") + `" href="` + href(p.Link("/blog/")) + `">` + esc(p.T("blog.allCategories")) + "</a></li>\n")
	for _, c := range cats {
		buf.WriteString(`<li><a class="` + badgeClass(c.Slug == active) + `" href="` + href(c.URL) + `">` + esc(c.Title) + "</a></li>\n")
	}
	buf.WriteString("</ul>\n</nav>\n")
}

func badgeClass(active bool) string {
	if active {
		return "badge active"
	}
	return "badge"
}

// isHexColor reports whether s is a CSS hex color such as #0f766e or #fff.
func isHexColor(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
