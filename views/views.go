// Package views holds the default pages. Every page is a templ component
// that writes its markup straight into a buffer, the same way the post
// body renderer does.
package views

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/oyifa"
)

// Default returns the default views.
func Default() oyifa.ViewFuncs {
	return oyifa.ViewFuncs{
		Home:        Home,
		Blog:        Blog,
		Post:        Post,
		Category:    Category,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// Home renders the landing page with the most recent posts.
func Home(p oyifa.HomePage) templ.Component {
	return page(p.Page, func(ctx context.Context, buf *bytes.Buffer) error {
		tagline := p.Site.Description
		if tagline == "" {
			tagline = p.T("site.tagline")
		}
		buf.WriteString("<section class=\"hero\">\n<h1>" + esc(p.Site.Name) + "</h1>\n")
		buf.WriteString("<p>" + esc(tagline) + "</p>\n</section>\n")
		buf.WriteString("<section>\n<h2>" + esc(p.T("home.recent")) + "</h2>\n")
		cards(buf, p.Page, p.Recent)
		buf.WriteString(`<p><a href="` + href(p.Link("/blog/")) + `">` + esc(p.T("home.viewAll")) + "</a></p>\n</section>\n")
		return nil
	})
}

// Blog renders the listing of every post.
func Blog(p oyifa.BlogPage) templ.Component {
	return page(p.Page, func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<h1>" + esc(p.T("blog.title")) + "</h1>\n")
		buf.WriteString("<p>" + esc(p.T("blog.description")) + "</p>\n")
		if len(p.Categories) > 0 {
			categoryNav(buf, p.Page, p.Categories, "")
		}
		cards(buf, p.Page, p.Posts)
		return nil
	})
}

// Category renders the posts of one category.
func Category(p oyifa.CategoryPage) templ.Component {
	return page(p.Page, func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<h1>" + esc(p.Category.Title) + "</h1>\n")
		if p.Category.Description != "" {
			buf.WriteString("<p>" + esc(p.Category.Description) + "</p>\n")
		}
		categoryNav(buf, p.Page, p.Categories, p.Category.Slug)
		buf.WriteString("<h2>" + esc(p.T("category.posts")) + "</h2>\n")
		cards(buf, p.Page, p.Posts)
		return nil
	})
}

// Post renders a single post with its author box and related posts.
func Post(p oyifa.PostPage) templ.Component {
	return page(p.Page, func(ctx context.Context, buf *bytes.Buffer) error {
		post := p.Post
		buf.WriteString("<article class=\"post\">\n<header>\n<h1>" + esc(post.Title) + "</h1>\n<p class=\"meta\">")
		sep := ""
		if post.PublishedAt != "" {
			buf.WriteString(esc(p.T("post.published")) + ` <time datetime="` + esc(post.PublishedAt) + `">` + esc(post.Published) + "</time>")
			sep = " · "
		}
		if p.Updated != "" {
			buf.WriteString(sep + esc(p.T("post.updated")) + " " + esc(p.Updated))
			sep = " · "
		}
		if p.ReadingMinutes > 0 {
			buf.WriteString(sep + strconv.Itoa(p.ReadingMinutes) + " " + esc(p.T("post.readingTime")))
			sep = " · "
		}
		if post.AuthorName != "" {
			buf.WriteString(sep + esc(p.T("post.by")) + " " + esc(post.AuthorName))
		}
		buf.WriteString("</p>\n")
		badges(buf, post.Categories)
		if src := href(post.Image); src != "" {
			buf.WriteString(`<img class="cover" src="` + src + `" alt="` + esc(post.ImageAlt) + "\">\n")
		}
		buf.WriteString("</header>\n<div class=\"prose\">\n")
		if err := embed(ctx, buf, p.Body); err != nil {
			return err
		}
		buf.WriteString("</div>\n</article>\n")

		if a := p.Author; a != nil {
			buf.WriteString("<aside class=\"author\">\n")
			if src := href(a.Image); src != "" {
				buf.WriteString(`<img src="` + src + `" alt="` + esc(a.Name) + "\" loading=\"lazy\">\n")
			}
			buf.WriteString("<div>\n<strong>" + esc(a.Name) + "</strong>\n")
			if err := embed(ctx, buf, a.Bio); err != nil {
				return err
			}
			buf.WriteString("<p>")
			for _, link := range []struct{ url, label string }{
				{a.Website, "Website"},
				{a.Twitter, "X"},
				{a.LinkedIn, "LinkedIn"},
			} {
				if u := href(link.url); u != "" {
					buf.WriteString(`<a href="` + u + `" rel="noopener">` + link.label + "</a> ")
				}
			}
			buf.WriteString("</p>\n</div>\n</aside>\n")
		}

		if len(p.Related) > 0 {
			buf.WriteString("<section>\n<h2>" + esc(p.T("post.more")) + "</h2>\n")
			cards(buf, p.Page, p.Related)
			buf.WriteString("</section>\n")
		}
		buf.WriteString(`<p><a href="` + href(p.Link("/blog/")) + `">` + esc(p.T("post.back")) + "</a></p>\n")
		return nil
	})
}

// NotFound renders the 404 page.
func NotFound(p oyifa.Page) templ.Component {
	return page(p, func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<h1>" + esc(p.T("error.notFound.title")) + "</h1>\n")
		buf.WriteString("<p>" + esc(p.T("error.notFound.body")) + "</p>\n")
		buf.WriteString(`<p><a href="` + href(p.Link("/")) + `">` + esc(p.T("nav.home")) + "</a></p>\n")
		return nil
	})
}

// ServerError renders the 500 page.
func ServerError(p oyifa.Page) templ.Component {
	return page(p, func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<h1>" + esc(p.T("error.server.title")) + "</h1>\n")
		buf.WriteString("<p>" + esc(p.T("error.server.body")) + "</p>\n")
		return nil
	})
}

// page wraps body in the shared document shell. Nothing reaches w unless
// the whole page rendered.
func page(p oyifa.Page, body func(ctx context.Context, buf *bytes.Buffer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		head(&buf, p)
		if err := body(ctx, &buf); err != nil {
			return err
		}
		foot(&buf, p)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// embed renders a nested component, such as a post body, with the
// page's context.
func embed(ctx context.Context, buf *bytes.Buffer, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, buf)
}
