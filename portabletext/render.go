package portabletext

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// AssetResolver maps an asset reference (e.g. "image-abc-800x600-png") to a
// URL. It returns "" when the reference cannot be resolved.
type AssetResolver func(ref string) string

// Renderer converts documents to HTML.
type Renderer struct {
	resolve AssetResolver
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssetResolver lets image blocks that carry only an asset reference
// render through resolve.
func WithAssetResolver(resolve AssetResolver) Option {
	return func(r *Renderer) {
		r.resolve = resolve
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = New()

// ToHTML renders blocks with the default renderer.
func ToHTML(blocks Blocks) string {
	return defaultRenderer.Render(blocks)
}

// Component returns a templ.Component that renders blocks as HTML.
func (r *Renderer) Component(blocks Blocks) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		r.RenderTo(&buf, blocks)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render returns the HTML for blocks.
func (r *Renderer) Render(blocks Blocks) string {
	var buf bytes.Buffer
	r.RenderTo(&buf, blocks)
	return buf.String()
}

type openList struct {
	tag   string
	level int
}

// RenderTo writes the HTML for blocks to buf.
func (r *Renderer) RenderTo(buf *bytes.Buffer, blocks Blocks) {
	var lists []openList

	closeLists := func(toLevel int) {
		for len(lists) > 0 && lists[len(lists)-1].level > toLevel {
			buf.WriteString("</li></" + lists[len(lists)-1].tag + ">")
			lists = lists[:len(lists)-1]
		}
	}

	for _, b := range blocks {
		tb, ok := b.(*TextBlock)
		if !ok || tb == nil || tb.ListItem == "" {
			closeLists(0)
			switch v := b.(type) {
			case *TextBlock:
				if v != nil {
					r.writeTextBlock(buf, v)
				}
			case *ImageBlock:
				if v != nil {
					r.writeImage(buf, v)
				}
			}
			continue
		}

		level := tb.Level
		if level < 1 {
			level = 1
		}
		tag := listTag(tb.ListItem)
		closeLists(level)
		if n := len(lists); n > 0 && lists[n-1].level == level && lists[n-1].tag != tag {
			closeLists(level - 1)
		}
		if n := len(lists); n > 0 && lists[n-1].level == level {
			buf.WriteString("</li><li>")
		} else {
			buf.WriteString("<" + tag + "><li>")
			lists = append(lists, openList{tag: tag, level: level})
		}
		r.writeSpans(buf, tb)
	}
	closeLists(0)
}

func listTag(item string) string {
	if item == "number" {
		return "ol"
	}
	return "ul"
}

func (r *Renderer) writeTextBlock(buf *bytes.Buffer, b *TextBlock) {
	tag := "p"
	switch b.Style {
	case "h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
		tag = b.Style
	}
	buf.WriteString("<" + tag + ">")
	r.writeSpans(buf, b)
	buf.WriteString("</" + tag + ">")
}

func (r *Renderer) writeSpans(buf *bytes.Buffer, b *TextBlock) {
	defs := make(map[string]MarkDef, len(b.MarkDefs))
	for _, d := range b.MarkDefs {
		defs[d.Key] = d
	}
	for _, s := range b.Children {
		if s.Type != "span" {
			continue
		}
		text := strings.ReplaceAll(html.EscapeString(s.Text), "\n", "<br/>")
		// Marks listed first wrap outermost.
		for i := len(s.Marks) - 1; i >= 0; i-- {
			text = wrapMark(text, s.Marks[i], defs)
		}
		buf.WriteString(text)
	}
}

func wrapMark(inner, mark string, defs map[string]MarkDef) string {
	switch mark {
	case "strong":
		return "<strong>" + inner + "</strong>"
	case "em":
		return "<em>" + inner + "</em>"
	case "code":
		return "<code>" + inner + "</code>"
	case "underline":
		return `<span style="text-decoration:underline">` + inner + "</span>"
	case "strike-through":
		return "<del>" + inner + "</del>"
	}
	def, ok := defs[mark]
	if !ok || def.Type != "link" {
		return inner
	}
	return linkHTML(def.Href, inner)
}

// linkHTML renders an anchor. Hrefs that are not site-relative open in a
// new tab.
func linkHTML(href, inner string) string {
	safe := SafeURL(href)
	if safe == "" {
		return inner
	}
	attrs := ""
	if !strings.HasPrefix(strings.TrimSpace(href), "/") {
		attrs = ` target="_blank" rel="noopener noreferrer"`
	}
	return `<a href="` + safe + `"` + attrs + `>` + inner + `</a>`
}

func (r *Renderer) writeImage(buf *bytes.Buffer, img *ImageBlock) {
	src := r.imageURL(img)
	if src == "" {
		return
	}
	alt := html.EscapeString(img.Alt)
	size := ""
	if w, h, ok := ImageSize(img.Asset.Ref); ok {
		size = ` width="` + strconv.Itoa(w) + `" height="` + strconv.Itoa(h) + `"`
	}
	buf.WriteString(`<figure><img src="` + src + `" alt="` + alt + `"` + size + ` loading="lazy" decoding="async"/>`)
	caption := img.Caption
	if caption == "" {
		caption = img.Alt
	}
	if caption != "" {
		buf.WriteString("<figcaption>" + html.EscapeString(caption) + "</figcaption>")
	}
	buf.WriteString("</figure>")
}

func (r *Renderer) imageURL(img *ImageBlock) string {
	if img.Asset == nil {
		return ""
	}
	if u := SafeURL(img.Asset.URL); u != "" {
		return u
	}
	if r.resolve != nil && img.Asset.Ref != "" {
		return SafeURL(r.resolve(img.Asset.Ref))
	}
	return ""
}

// SafeURL validates and escapes a URL for use in an HTML attribute. Only
// relative, fragment, http(s), mailto and tel URLs are allowed; anything
// else yields "".
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}

// ImageSize reads the pixel dimensions encoded in an image asset reference
// ("image-<id>-<w>x<h>-<format>"). ok is false for any other shape.
func ImageSize(ref string) (w, h int, ok bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return 0, 0, false
	}
	dims := strings.SplitN(parts[2], "x", 2)
	if len(dims) != 2 {
		return 0, 0, false
	}
	w, errW := strconv.Atoi(dims[0])
	h, errH := strconv.Atoi(dims[1])
	if errW != nil || errH != nil {
		return 0, 0, false
	}
	return w, h, true
}
