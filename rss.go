package oyifa

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/i18n"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category"`
}

func (a *App) feed(lang i18n.Lang, posts []content.Post) rssXML {
	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if !p.PublishedAt.IsZero() {
			pubDate = p.PublishedAt.Format(time.RFC1123Z)
		}
		postURL := AbsoluteURL(base, PostPath(p.Slug.Current, lang))
		item := rssItem{
			Title:       content.SelectText(&p.Title, lang),
			Link:        postURL,
			Description: content.SelectText(p.Excerpt, lang),
			PubDate:     pubDate,
			GUID:        postURL,
		}
		for _, c := range p.Categories {
			item.Categories = append(item.Categories, content.SelectText(&c.Title, lang))
		}
		items = append(items, item)
	}
	desc := a.Config.Description
	if desc == "" {
		desc = i18n.T(lang, "site.tagline")
	}
	return rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name + " | " + i18n.T(lang, "feed.title"),
			Link:        AbsoluteURL(base, i18n.LocalizePath("/", lang)),
			Description: desc,
			Language:    i18n.Tag(lang).String(),
			Items:       items,
		},
	}
}

func (a *App) renderRSS(c echo.Context, lang i18n.Lang, posts []content.Post) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(a.feed(lang, posts))
}
