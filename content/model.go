// Package content reads posts, authors and categories from the hosted
// content store and selects the display text for a language.
//
// Documents are created and edited only in the store's editing studio.
// This package never writes; every value is built fresh from a query
// result.
package content

import (
	"time"

	"github.com/eringen/oyifa/portabletext"
)

// BilingualText is a string field edited in both languages. Optional
// fields may carry either language or neither; titles and names are
// tagged "en" and must have English text.
type BilingualText struct {
	EN string `json:"en,omitempty"`
	AR string `json:"ar,omitempty"`
}

// BilingualBlock is a rich text field edited in both languages.
type BilingualBlock struct {
	EN portabletext.Blocks `json:"en,omitempty"`
	AR portabletext.Blocks `json:"ar,omitempty"`
}

// Slug mirrors the store's slug object.
type Slug struct {
	Current string `json:"current" validate:"required"`
}

// Asset is a dereferenced uploaded file.
type Asset struct {
	URL string `json:"url"`
}

// Image is an image field with optional localized alt text.
type Image struct {
	Asset *Asset         `json:"asset,omitempty"`
	Alt   *BilingualText `json:"alt,omitempty"`
}

// URL returns the image's asset URL, or "" when it did not resolve.
func (i *Image) URL() string {
	if i == nil || i.Asset == nil {
		return ""
	}
	return i.Asset.URL
}

// Social holds an author's optional profile links.
type Social struct {
	Twitter  string `json:"twitter,omitempty" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
}

// Author is an author document.
type Author struct {
	ID     string          `json:"_id" validate:"required"`
	Name   BilingualText   `json:"name" validate:"en"`
	Slug   Slug            `json:"slug" validate:"-"`
	Image  *Image          `json:"image,omitempty"`
	Bio    *BilingualBlock `json:"bio,omitempty"`
	Social *Social         `json:"social,omitempty"`
}

// Category is a category document.
type Category struct {
	ID          string         `json:"_id" validate:"required"`
	Title       BilingualText  `json:"title" validate:"en"`
	Slug        Slug           `json:"slug"`
	Description *BilingualText `json:"description,omitempty"`
	Color       string         `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// SEO holds per-post metadata overrides.
type SEO struct {
	MetaTitle       *BilingualText `json:"metaTitle,omitempty"`
	MetaDescription *BilingualText `json:"metaDescription,omitempty"`
}

// Post is a blog post document. Author and Categories are expanded by the
// store; Body and SEO are only present in the single-post projection.
type Post struct {
	ID          string          `json:"_id" validate:"required"`
	Title       BilingualText   `json:"title" validate:"en"`
	Slug        Slug            `json:"slug"`
	Author      *Author         `json:"author,omitempty"`
	MainImage   *Image          `json:"mainImage,omitempty"`
	Categories  []Category      `json:"categories,omitempty" validate:"dive"`
	PublishedAt time.Time       `json:"publishedAt"`
	UpdatedAt   time.Time       `json:"_updatedAt"`
	Excerpt     *BilingualText  `json:"excerpt,omitempty"`
	Body        *BilingualBlock `json:"body,omitempty"`
	SEO         *SEO            `json:"seo,omitempty"`
}

// LastModified returns UpdatedAt, or PublishedAt for documents that were
// never updated.
func (p Post) LastModified() time.Time {
	if p.UpdatedAt.After(p.PublishedAt) {
		return p.UpdatedAt
	}
	return p.PublishedAt
}
