// Package i18n resolves the active language from request paths and maps
// routes to and from their locale-prefixed forms.
//
// The default language is served without a prefix (/blog/), every other
// language under its two-letter code (/ar/blog/).
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Lang is a two-letter locale code.
type Lang string

const (
	EN Lang = "en"
	AR Lang = "ar"
)

// Default is the language served on unprefixed paths.
const Default = EN

// Languages lists the supported languages, default first.
var Languages = []Lang{EN, AR}

var tags = map[Lang]language.Tag{
	EN: language.English,
	AR: language.Arabic,
}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	_, ok := tags[Lang(code)]
	return ok
}

// ResolveLanguage returns the language named by the first segment of path,
// or Default when that segment is not a supported locale code.
func ResolveLanguage(path string) Lang {
	seg := firstSegment(path)
	if IsSupported(seg) {
		return Lang(seg)
	}
	return Default
}

// StripLocalePrefix removes the leading locale segment from path. Paths in
// the default language are returned unchanged.
func StripLocalePrefix(path string) string {
	lang := ResolveLanguage(path)
	if lang == Default {
		return path
	}
	rest := strings.TrimPrefix(path, "/"+string(lang))
	if rest == "" {
		return "/"
	}
	return rest
}

// LocalizePath prefixes path with /{lang} unless lang is the default.
func LocalizePath(path string, lang Lang) string {
	if lang == Default {
		return path
	}
	return "/" + string(lang) + path
}

// IsRightToLeft reports whether lang is written right to left.
func IsRightToLeft(lang Lang) bool {
	return lang == AR
}

// Dir returns the HTML dir attribute value for lang.
func Dir(lang Lang) string {
	if IsRightToLeft(lang) {
		return "rtl"
	}
	return "ltr"
}

// Tag returns the BCP 47 tag for lang. Unsupported codes map to the
// default language's tag.
func Tag(lang Lang) language.Tag {
	if t, ok := tags[lang]; ok {
		return t
	}
	return tags[Default]
}

// DisplayName returns the name of lang in its own script, e.g. "العربية".
func DisplayName(lang Lang) string {
	return display.Self.Name(Tag(lang))
}

// Alternate is one language version of a route.
type Alternate struct {
	Lang Lang
	Path string
}

// Alternates returns path (in any language) as it appears in every
// supported language, in Languages order.
func Alternates(path string) []Alternate {
	route := StripLocalePrefix(path)
	out := make([]Alternate, 0, len(Languages))
	for _, l := range Languages {
		out = append(out, Alternate{Lang: l, Path: LocalizePath(route, l)})
	}
	return out
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
