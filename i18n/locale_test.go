package i18n

import (
	"testing"
	"time"
)

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		path string
		want Lang
	}{
		{"/", EN},
		{"", EN},
		{"/blog/", EN},
		{"/ar", AR},
		{"/ar/", AR},
		{"/ar/blog/hello/", AR},
		{"/en/blog/", EN},
		{"/fr/blog/", EN},
		{"/arabic/", EN},
		{"/blog/ar/", EN},
	}
	for _, tt := range tests {
		if got := ResolveLanguage(tt.path); got != tt.want {
			t.Errorf("ResolveLanguage(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestStripLocalePrefix(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"/blog/", "/blog/"},
		{"/ar", "/"},
		{"/ar/", "/"},
		{"/ar/blog/", "/blog/"},
		{"/ar/ar/x", "/ar/x"},
		{"/fr/blog/", "/fr/blog/"},
	}
	for _, tt := range tests {
		if got := StripLocalePrefix(tt.path); got != tt.want {
			t.Errorf("StripLocalePrefix(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLocalizePath(t *testing.T) {
	tests := []struct {
		path string
		lang Lang
		want string
	}{
		{"/", EN, "/"},
		{"/blog/", EN, "/blog/"},
		{"/", AR, "/ar/"},
		{"/blog/x/", AR, "/ar/blog/x/"},
	}
	for _, tt := range tests {
		if got := LocalizePath(tt.path, tt.lang); got != tt.want {
			t.Errorf("LocalizePath(%q, %q) = %q, want %q", tt.path, tt.lang, got, tt.want)
		}
	}
}

func TestLocalizeStripRoundTrip(t *testing.T) {
	paths := []string{"/", "/blog/", "/blog/a-post/", "/category/news/", "/ar/x", "/en/", "/ar"}
	for _, l := range Languages {
		if l == Default {
			continue
		}
		for _, p := range paths {
			if got := StripLocalePrefix(LocalizePath(p, l)); got != p {
				t.Errorf("StripLocalePrefix(LocalizePath(%q, %q)) = %q", p, l, got)
			}
		}
	}
}

func TestIsRightToLeft(t *testing.T) {
	if !IsRightToLeft(AR) {
		t.Error("ar should be right to left")
	}
	if IsRightToLeft(EN) {
		t.Error("en should be left to right")
	}
	if Dir(AR) != "rtl" || Dir(EN) != "ltr" {
		t.Errorf("Dir = %q/%q, want rtl/ltr", Dir(AR), Dir(EN))
	}
}

func TestTagAndDisplayName(t *testing.T) {
	if got := Tag(AR).String(); got != "ar" {
		t.Errorf("Tag(ar) = %q", got)
	}
	if got := Tag("xx").String(); got != "en" {
		t.Errorf("Tag(xx) = %q, want en", got)
	}
	if got := DisplayName(EN); got != "English" {
		t.Errorf("DisplayName(en) = %q", got)
	}
	if got := DisplayName(AR); got != "العربية" {
		t.Errorf("DisplayName(ar) = %q", got)
	}
}

func TestAlternates(t *testing.T) {
	got := Alternates("/ar/blog/x/")
	if len(got) != 2 {
		t.Fatalf("Alternates returned %d entries", len(got))
	}
	if got[0] != (Alternate{Lang: EN, Path: "/blog/x/"}) {
		t.Errorf("en alternate = %+v", got[0])
	}
	if got[1] != (Alternate{Lang: AR, Path: "/ar/blog/x/"}) {
		t.Errorf("ar alternate = %+v", got[1])
	}
}

func TestTFallback(t *testing.T) {
	d, err := ParseDictionary([]byte(`
strings:
  en:
    a: A
    b: B
  ar:
    a: أ
`))
	if err != nil {
		t.Fatal(err)
	}
	if got := d.T(AR, "a"); got != "أ" {
		t.Errorf("T(ar, a) = %q", got)
	}
	if got := d.T(AR, "b"); got != "B" {
		t.Errorf("T(ar, b) = %q, want English fallback", got)
	}
	if got := d.T(AR, "missing"); got != "missing" {
		t.Errorf("T(ar, missing) = %q, want key", got)
	}
}

func TestEmbeddedDictionaryCoversArabic(t *testing.T) {
	for key := range ui.Strings[EN] {
		if ui.Strings[AR][key] == "" {
			t.Errorf("ar is missing UI string %q", key)
		}
	}
}

func TestParseDictionaryRejectsShortMonths(t *testing.T) {
	_, err := ParseDictionary([]byte("months:\n  en: [Jan]\n"))
	if err == nil {
		t.Fatal("expected error for short month list")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d, EN); got != "March 5, 2024" {
		t.Errorf("FormatDate(en) = %q", got)
	}
	if got := FormatDate(d, AR); got != "5 مارس 2024" {
		t.Errorf("FormatDate(ar) = %q", got)
	}
	if got := FormatDate(time.Time{}, EN); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}
