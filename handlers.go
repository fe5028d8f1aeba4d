package oyifa

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/i18n"
	"github.com/eringen/oyifa/portabletext"
)

func (a *App) handleHome(c echo.Context) error {
	lang := langOf(c)
	posts, err := a.Content.RecentPosts(c.Request().Context())
	if err != nil {
		return err
	}
	page := a.newPage(c, PageMeta{
		Title:  a.Config.Name,
		JSONLD: WebsiteJsonLD(a.Config, lang),
	})
	return Render(c, a.Views.Home(HomePage{Page: page, Recent: postCards(posts, lang)}))
}

func (a *App) handleBlog(c echo.Context) error {
	lang := langOf(c)
	var (
		posts []content.Post
		cats  []content.Category
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) {
		posts, err = a.Content.AllPosts(ctx)
		return err
	})
	g.Go(func() (err error) {
		cats, err = a.Content.AllCategories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	page := a.newPage(c, PageMeta{
		Title:       i18n.T(lang, "blog.title") + " | " + a.Config.Name,
		Description: i18n.T(lang, "blog.description"),
	})
	return Render(c, a.Views.Blog(BlogPage{
		Page:       page,
		Posts:      postCards(posts, lang),
		Categories: categoryBadges(cats, lang),
	}))
}

func (a *App) handlePost(c echo.Context) error {
	lang := langOf(c)
	slug := c.Param("slug")
	var (
		post  content.Post
		found bool
		all   []content.Post
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) {
		post, found, err = a.Content.PostBySlug(ctx, slug)
		return err
	})
	g.Go(func() (err error) {
		all, err = a.Content.AllPosts(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if !found {
		return a.renderNotFound(c)
	}

	card := postCard(post, lang)
	meta := PageMeta{
		Title:       card.Title + " | " + a.Config.Name,
		Description: card.Excerpt,
		OGType:      "article",
		Image:       card.Image,
		JSONLD:      BlogPostingJsonLD(a.Config, post, lang),
	}
	if post.SEO != nil {
		if t := content.SelectText(post.SEO.MetaTitle, lang); t != "" {
			meta.Title = t
		}
		if d := content.SelectText(post.SEO.MetaDescription, lang); d != "" {
			meta.Description = d
		}
	}

	body := content.SelectBlock(post.Body, lang)
	return Render(c, a.Views.Post(PostPage{
		Page:           a.newPage(c, meta),
		Post:           card,
		Updated:        updatedDate(post, lang),
		Body:           a.Renderer.Component(body),
		ReadingMinutes: portabletext.ReadingMinutes(body),
		Author:         a.authorCard(post.Author, lang),
		Related:        postCards(RelatedPosts(post, all), lang),
	}))
}

func (a *App) handleCategory(c echo.Context) error {
	lang := langOf(c)
	ctx := c.Request().Context()
	cats, err := a.Content.AllCategories(ctx)
	if err != nil {
		return err
	}
	cat, ok := content.CategoryBySlug(cats, c.Param("slug"))
	if !ok {
		return a.renderNotFound(c)
	}
	posts, err := a.Content.PostsByCategory(ctx, cat.ID)
	if err != nil {
		return err
	}

	detail := CategoryDetail{
		CategoryBadge: categoryBadge(cat, lang),
		Description:   content.SelectText(cat.Description, lang),
	}
	page := a.newPage(c, PageMeta{
		Title:       detail.Title + " | " + a.Config.Name,
		Description: detail.Description,
	})
	return Render(c, a.Views.Category(CategoryPage{
		Page:       page,
		Category:   detail,
		Posts:      postCards(posts, lang),
		Categories: categoryBadges(cats, lang),
	}))
}

func (a *App) handleSitemap(c echo.Context) error {
	var (
		posts []content.Post
		cats  []content.Category
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) {
		posts, err = a.Content.AllPosts(ctx)
		return err
	})
	g.Go(func() (err error) {
		cats, err = a.Content.AllCategories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return a.renderSitemap(c, posts, cats)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Content.AllPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, langOf(c), posts)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /api/\nDisallow: /admin/\n\nSitemap: " +
		AbsoluteURL(a.Config.URL, "/sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) renderNotFound(c echo.Context) error {
	lang := langOf(c)
	page := a.newPage(c, PageMeta{Title: i18n.T(lang, "error.notFound.title") + " | " + a.Config.Name})
	c.Response().Header().Set("Cache-Control", "no-store")
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(page))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		lang := langOf(c)
		page := a.newPage(c, PageMeta{Title: i18n.T(lang, "error.server.title") + " | " + a.Config.Name})
		c.Response().Header().Set("Cache-Control", "no-store")
		_ = RenderStatus(c, code, a.Views.ServerError(page))
		return
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
