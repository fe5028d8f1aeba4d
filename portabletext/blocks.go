// Package portabletext renders portable-text block documents, the rich text
// format of the content store, to HTML.
//
// Block payloads decode into a closed set of variants (TextBlock, ImageBlock,
// UnknownBlock) so that rendering and word counting are total over every
// document the store can return.
package portabletext

import (
	"bytes"
	"encoding/json"
)

// Block is one top-level node of a document.
type Block interface {
	// Type is the node's _type.
	Type() string
	// Key is the node's _key, unique within its document.
	Key() string

	block()
}

// Blocks is a portable-text document.
type Blocks []Block

// Span is an inline run of text with marks. Marks name either a decorator
// ("strong", "em", ...) or the key of a MarkDef on the enclosing block.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced from span marks, e.g. a link.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// TextBlock is a paragraph, heading, quote or list item.
type TextBlock struct {
	BlockKey string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

func (*TextBlock) Type() string  { return "block" }
func (b *TextBlock) Key() string { return b.BlockKey }
func (*TextBlock) block()        {}

// AssetRef points at an uploaded file. Queries that dereference the asset
// fill URL; raw documents carry only Ref.
type AssetRef struct {
	Ref string `json:"_ref,omitempty"`
	URL string `json:"url,omitempty"`
}

// ImageBlock is an embedded image.
type ImageBlock struct {
	BlockKey string
	Asset    *AssetRef
	Alt      string
	Caption  string
}

func (*ImageBlock) Type() string  { return "image" }
func (b *ImageBlock) Key() string { return b.BlockKey }
func (*ImageBlock) block()        {}

// UnknownBlock keeps a node of any other type so documents round-trip
// without loss. It renders as nothing.
type UnknownBlock struct {
	BlockType string
	BlockKey  string
	Raw       json.RawMessage
}

func (b *UnknownBlock) Type() string { return b.BlockType }
func (b *UnknownBlock) Key() string  { return b.BlockKey }
func (*UnknownBlock) block()         {}

type header struct {
	Type string `json:"_type"`
	Key  string `json:"_key"`
}

type imageWire struct {
	Asset   *AssetRef       `json:"asset"`
	Alt     json.RawMessage `json:"alt"`
	Caption json.RawMessage `json:"caption"`
}

// UnmarshalJSON decodes a document. A value that is not an array decodes
// as a nil document. Entries that are not objects are dropped; a block
// whose fields have unexpected shapes keeps what decodes.
func (bs *Blocks) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*bs = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not a block list at all, e.g. a half-edited field holding a
		// string. Treat it as absent.
		*bs = nil
		return nil
	}
	out := make(Blocks, 0, len(raw))
	for _, r := range raw {
		var h header
		if err := json.Unmarshal(r, &h); err != nil {
			continue
		}
		switch h.Type {
		case "block":
			tb := &TextBlock{BlockKey: h.Key}
			if err := json.Unmarshal(r, tb); err != nil {
				tb = decodeTextLoose(r, h.Key)
			}
			out = append(out, tb)
		case "image":
			var w imageWire
			_ = json.Unmarshal(r, &w)
			out = append(out, &ImageBlock{
				BlockKey: h.Key,
				Asset:    w.Asset,
				Alt:      stringOrEmpty(w.Alt),
				Caption:  stringOrEmpty(w.Caption),
			})
		default:
			out = append(out, &UnknownBlock{BlockType: h.Type, BlockKey: h.Key, Raw: r})
		}
	}
	*bs = out
	return nil
}

// MarshalJSON encodes the document back to the store's wire format.
func (bs Blocks) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(bs))
	for _, b := range bs {
		var (
			data []byte
			err  error
		)
		switch v := b.(type) {
		case *TextBlock:
			data, err = json.Marshal(struct {
				Type string `json:"_type"`
				*TextBlock
			}{"block", v})
		case *ImageBlock:
			data, err = json.Marshal(struct {
				Type    string    `json:"_type"`
				Key     string    `json:"_key,omitempty"`
				Asset   *AssetRef `json:"asset,omitempty"`
				Alt     string    `json:"alt,omitempty"`
				Caption string    `json:"caption,omitempty"`
			}{"image", v.BlockKey, v.Asset, v.Alt, v.Caption})
		case *UnknownBlock:
			data = v.Raw
		}
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			out = append(out, data)
		}
	}
	return json.Marshal(out)
}

// decodeTextLoose decodes each text block field on its own so that one
// malformed field does not discard the rest.
func decodeTextLoose(r json.RawMessage, key string) *TextBlock {
	tb := &TextBlock{BlockKey: key}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r, &fields); err != nil {
		return tb
	}
	_ = json.Unmarshal(fields["style"], &tb.Style)
	_ = json.Unmarshal(fields["listItem"], &tb.ListItem)
	_ = json.Unmarshal(fields["level"], &tb.Level)
	var markDefs []json.RawMessage
	if json.Unmarshal(fields["markDefs"], &markDefs) == nil {
		for _, m := range markDefs {
			var md MarkDef
			if json.Unmarshal(m, &md) == nil {
				tb.MarkDefs = append(tb.MarkDefs, md)
			}
		}
	}
	var children []json.RawMessage
	if json.Unmarshal(fields["children"], &children) == nil {
		for _, c := range children {
			var s Span
			if json.Unmarshal(c, &s) == nil {
				tb.Children = append(tb.Children, s)
			}
		}
	}
	return tb
}

func stringOrEmpty(r json.RawMessage) string {
	var s string
	if len(r) == 0 || json.Unmarshal(r, &s) != nil {
		return ""
	}
	return s
}
