package oyifa

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/i18n"
)

// Paths containing any of these never appear in the sitemap.
var sitemapExcluded = []string{"/api/", "/_astro/", "/admin/"}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type sitemapRoute struct {
	path    string
	lastMod time.Time
}

func excludedFromSitemap(path string) bool {
	for _, s := range sitemapExcluded {
		if strings.Contains(path, s) {
			return true
		}
	}
	return false
}

// sitemapURLs lists every page in every language, each with hreflang
// alternates for all languages plus x-default.
func (a *App) sitemapURLs(posts []content.Post, cats []content.Category) []sitemapURL {
	var newest time.Time
	for _, p := range posts {
		if m := p.LastModified(); m.After(newest) {
			newest = m
		}
	}

	routes := []sitemapRoute{
		{path: "/", lastMod: newest},
		{path: "/blog/", lastMod: newest},
	}
	for _, p := range posts {
		routes = append(routes, sitemapRoute{path: PostPath(p.Slug.Current, i18n.Default), lastMod: p.LastModified()})
	}
	for _, c := range cats {
		routes = append(routes, sitemapRoute{path: CategoryPath(c.Slug.Current, i18n.Default)})
	}

	var urls []sitemapURL
	for _, r := range routes {
		alts := i18n.Alternates(r.path)
		links := make([]sitemapLink, 0, len(alts)+1)
		for _, alt := range alts {
			links = append(links, sitemapLink{Rel: "alternate", Hreflang: string(alt.Lang), Href: AbsoluteURL(a.Config.URL, alt.Path)})
		}
		links = append(links, sitemapLink{Rel: "alternate", Hreflang: "x-default", Href: AbsoluteURL(a.Config.URL, r.path)})

		lastMod := ""
		if !r.lastMod.IsZero() {
			lastMod = r.lastMod.UTC().Format("2006-01-02")
		}
		for _, alt := range alts {
			if excludedFromSitemap(alt.Path) {
				continue
			}
			urls = append(urls, sitemapURL{
				Loc:        AbsoluteURL(a.Config.URL, alt.Path),
				LastMod:    lastMod,
				Alternates: links,
			})
		}
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context, posts []content.Post, cats []content.Category) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
		URLs:  a.sitemapURLs(posts, cats),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
