// Package oyifa serves a bilingual (English and Arabic) blog whose posts,
// authors and categories live in a hosted content store.
//
// Users provide page templates via the ViewFuncs struct, and oyifa handles
// routing, localization, content queries, middleware, RSS and the sitemap.
package oyifa

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/i18n"
	"github.com/eringen/oyifa/portabletext"
)

const shutdownTimeout = 10 * time.Second

// ViewFuncs holds the templ components the app calls when rendering pages.
// Every page receives its language, direction and alternates in its Page.
type ViewFuncs struct {
	Home        func(p HomePage) templ.Component
	Blog        func(p BlogPage) templ.Component
	Post        func(p PostPage) templ.Component
	Category    func(p CategoryPage) templ.Component
	NotFound    func(p Page) templ.Component
	ServerError func(p Page) templ.Component
}

// App is the central oyifa application. It wires together the content
// client, the rich-text renderer, handlers, middleware and templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Content  *content.Client
	Renderer *portabletext.Renderer
	Views    ViewFuncs
	Logger   *log.Logger

	querier      content.Querier
	customRoutes []func(*App)
	staticDir    string
	configured   bool
}

// New creates an App with the given configuration and view functions.
// Unless WithQuerier is given, content is read from the hosted store
// described by cfg.Content.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		a.Logger = log.New("oyifa")
		if cfg.Debug {
			a.Logger.SetLevel(log.DEBUG)
		} else {
			a.Logger.SetLevel(log.INFO)
		}
	}
	a.Echo.Logger = a.Logger
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	if a.querier == nil {
		a.querier = content.NewHTTPStore(cfg.Content, content.WithLogger(a.Logger))
	}
	a.Content = content.NewClient(a.querier)
	a.Renderer = portabletext.New(portabletext.WithAssetResolver(func(ref string) string {
		return content.ImageURL(a.Config.Content, ref)
	}))

	return a
}

// Handler returns the configured HTTP handler. Middleware and routes are
// installed on first use.
func (a *App) Handler() http.Handler {
	a.configure()
	return a.Echo
}

func (a *App) configure() {
	if a.configured {
		return
	}
	a.configured = true

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
}

// Start installs middleware and routes and serves until ctx is cancelled,
// then shuts the server down, letting in-flight requests finish.
func (a *App) Start(ctx context.Context) error {
	a.configure()

	serverErr := make(chan error, 1)
	go func() {
		a.Logger.Infof("listening on %s (%s, dataset %s)", a.Config.Addr, a.Config.URL, a.Config.Content.Dataset)
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("oyifa: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Infof("shutting down (timeout %s)", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("oyifa: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded default stylesheet; everything else under /public/ comes
	// from the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)

	for _, lang := range i18n.Languages {
		g := e.Group(strings.TrimSuffix(i18n.LocalizePath("/", lang), "/"))
		g.GET("/", a.handleHome)
		g.GET("/blog/", a.handleBlog)
		g.GET("/blog/:slug/", a.handlePost)
		g.GET("/category/:slug/", a.handleCategory)
		g.GET("/feed.xml", a.handleFeed)
	}
}

// Close releases resources held by the app.
func (a *App) Close() error {
	return a.Echo.Close()
}
