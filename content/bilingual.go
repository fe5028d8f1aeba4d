package content

import (
	"encoding/json"

	"github.com/eringen/oyifa/i18n"
	"github.com/eringen/oyifa/portabletext"
)

// SelectText returns field's value in lang, falling back to English and
// then to "". A nil field is empty.
func SelectText(field *BilingualText, lang i18n.Lang) string {
	if field == nil {
		return ""
	}
	if v := field.get(lang); v != "" {
		return v
	}
	return field.EN
}

// SelectBlock returns field's document in lang, falling back to English and
// then to an empty document. The result is never nil.
func SelectBlock(field *BilingualBlock, lang i18n.Lang) portabletext.Blocks {
	if field == nil {
		return portabletext.Blocks{}
	}
	if v := field.get(lang); len(v) > 0 {
		return v
	}
	if len(field.EN) > 0 {
		return field.EN
	}
	return portabletext.Blocks{}
}

// In is SelectText for a value.
func (t BilingualText) In(lang i18n.Lang) string {
	return SelectText(&t, lang)
}

func (t *BilingualText) get(lang i18n.Lang) string {
	switch lang {
	case i18n.EN:
		return t.EN
	case i18n.AR:
		return t.AR
	}
	return ""
}

func (b *BilingualBlock) get(lang i18n.Lang) portabletext.Blocks {
	switch lang {
	case i18n.EN:
		return b.EN
	case i18n.AR:
		return b.AR
	}
	return nil
}

// UnmarshalJSON keeps whichever languages hold strings. Any other shape,
// for the field or for one language, decodes as empty so that the
// English fallback applies.
func (t *BilingualText) UnmarshalJSON(data []byte) error {
	*t = BilingualText{}
	var fields map[string]json.RawMessage
	if json.Unmarshal(data, &fields) != nil {
		return nil
	}
	_ = json.Unmarshal(fields["en"], &t.EN)
	_ = json.Unmarshal(fields["ar"], &t.AR)
	return nil
}

// UnmarshalJSON decodes each language on its own; a field that is not an
// object decodes as empty.
func (b *BilingualBlock) UnmarshalJSON(data []byte) error {
	*b = BilingualBlock{}
	var fields map[string]json.RawMessage
	if json.Unmarshal(data, &fields) != nil {
		return nil
	}
	if r, ok := fields["en"]; ok {
		_ = json.Unmarshal(r, &b.EN)
	}
	if r, ok := fields["ar"]; ok {
		_ = json.Unmarshal(r, &b.AR)
	}
	return nil
}
