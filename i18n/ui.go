package i18n

import (
	_ "embed"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed ui.yaml
var defaultUI []byte

// Dictionary holds UI strings and month names per language.
type Dictionary struct {
	Strings map[Lang]map[string]string `yaml:"strings"`
	Months  map[Lang][]string          `yaml:"months"`
}

// ParseDictionary decodes a YAML dictionary.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("i18n: parse dictionary: %w", err)
	}
	for lang, months := range d.Months {
		if len(months) != 12 {
			return nil, fmt.Errorf("i18n: %s: want 12 month names, got %d", lang, len(months))
		}
	}
	return &d, nil
}

var ui = mustParse(defaultUI)

func mustParse(data []byte) *Dictionary {
	d, err := ParseDictionary(data)
	if err != nil {
		panic(err)
	}
	return d
}

// T looks key up for lang, falling back to the default language and then
// to the key itself.
func (d *Dictionary) T(lang Lang, key string) string {
	if v := d.Strings[lang][key]; v != "" {
		return v
	}
	if v := d.Strings[Default][key]; v != "" {
		return v
	}
	return key
}

// FormatDate renders t as "January 2, 2006" in English and "2 يناير 2006"
// in Arabic. The zero time formats as "".
func (d *Dictionary) FormatDate(t time.Time, lang Lang) string {
	if t.IsZero() {
		return ""
	}
	months := d.Months[lang]
	if len(months) != 12 {
		months = d.Months[Default]
	}
	month := t.Month().String()
	if len(months) == 12 {
		month = months[t.Month()-1]
	}
	day, year := strconv.Itoa(t.Day()), strconv.Itoa(t.Year())
	if lang == Default {
		return month + " " + day + ", " + year
	}
	return day + " " + month + " " + year
}

// T translates key using the embedded dictionary.
func T(lang Lang, key string) string {
	return ui.T(lang, key)
}

// FormatDate formats t using the embedded dictionary.
func FormatDate(t time.Time, lang Lang) string {
	return ui.FormatDate(t, lang)
}
