package oyifa

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/i18n"
)

// newPage builds the shared page data for the current request.
func (a *App) newPage(c echo.Context, meta PageMeta) Page {
	lang := langOf(c)
	route := i18n.StripLocalePrefix(c.Request().URL.Path)

	alts := i18n.Alternates(route)
	links := make([]AlternateLink, 0, len(alts))
	for _, alt := range alts {
		links = append(links, AlternateLink{
			Lang:  alt.Lang,
			Label: i18n.DisplayName(alt.Lang),
			URL:   AbsoluteURL(a.Config.URL, alt.Path),
		})
	}

	if meta.URL == "" {
		meta.URL = AbsoluteURL(a.Config.URL, i18n.LocalizePath(route, lang))
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	if meta.Title == "" {
		meta.Title = a.Config.Name
	}
	if meta.Description == "" {
		meta.Description = a.Config.Description
	}

	return Page{
		Site:       a.Config,
		Lang:       lang,
		Dir:        i18n.Dir(lang),
		Route:      route,
		Meta:       meta,
		Alternates: links,
	}
}

func categoryBadge(c content.Category, lang i18n.Lang) CategoryBadge {
	return CategoryBadge{
		Title: content.SelectText(&c.Title, lang),
		Slug:  c.Slug.Current,
		URL:   CategoryPath(c.Slug.Current, lang),
		Color: c.Color,
	}
}

func categoryBadges(cats []content.Category, lang i18n.Lang) []CategoryBadge {
	out := make([]CategoryBadge, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryBadge(c, lang))
	}
	return out
}

func postCard(p content.Post, lang i18n.Lang) PostCard {
	title := content.SelectText(&p.Title, lang)
	card := PostCard{
		Title:      title,
		Slug:       p.Slug.Current,
		URL:        PostPath(p.Slug.Current, lang),
		Excerpt:    content.SelectText(p.Excerpt, lang),
		Published:  i18n.FormatDate(p.PublishedAt, lang),
		Image:      p.MainImage.URL(),
		Categories: categoryBadges(p.Categories, lang),
	}
	if !p.PublishedAt.IsZero() {
		card.PublishedAt = p.PublishedAt.Format(time.RFC3339)
	}
	if card.Image != "" {
		card.ImageAlt = content.SelectText(p.MainImage.Alt, lang)
		if card.ImageAlt == "" {
			card.ImageAlt = title
		}
	}
	if p.Author != nil {
		card.AuthorName = content.SelectText(&p.Author.Name, lang)
	}
	return card
}

func postCards(posts []content.Post, lang i18n.Lang) []PostCard {
	out := make([]PostCard, 0, len(posts))
	for _, p := range posts {
		out = append(out, postCard(p, lang))
	}
	return out
}

func (a *App) authorCard(au *content.Author, lang i18n.Lang) *AuthorCard {
	if au == nil {
		return nil
	}
	card := &AuthorCard{
		Name:  content.SelectText(&au.Name, lang),
		Image: au.Image.URL(),
	}
	if bio := content.SelectBlock(au.Bio, lang); len(bio) > 0 {
		card.Bio = a.Renderer.Component(bio)
	}
	if au.Social != nil {
		card.Twitter = au.Social.Twitter
		card.LinkedIn = au.Social.LinkedIn
		card.Website = au.Social.Website
	}
	return card
}

// updatedDate returns the localized update date when the post was edited
// on a later day than it was published.
func updatedDate(p content.Post, lang i18n.Lang) string {
	if p.UpdatedAt.IsZero() || p.PublishedAt.IsZero() {
		return ""
	}
	y1, m1, d1 := p.PublishedAt.Date()
	y2, m2, d2 := p.UpdatedAt.Date()
	if !p.UpdatedAt.After(p.PublishedAt) || (y1 == y2 && m1 == m2 && d1 == d2) {
		return ""
	}
	return i18n.FormatDate(p.UpdatedAt, lang)
}
