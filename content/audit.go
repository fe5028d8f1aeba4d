package content

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator registers "en", which requires a BilingualText to have
// English text.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("en", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(BilingualText)
		return ok && t.EN != ""
	})
	return v
}

// Validate checks doc (a Post, Author or Category) against the editing
// studio's required-field rules.
func Validate(doc any) error {
	return validate.Struct(doc)
}

// MissingTranslation is a bilingual field that has English text but no
// Arabic text, so Arabic pages show the English fallback.
type MissingTranslation struct {
	DocType string
	ID      string
	Slug    string
	Field   string
}

// Invalid is a document that fails validation.
type Invalid struct {
	DocType string
	ID      string
	Slug    string
	Fields  []string
}

// Report is the result of AuditTranslations.
type Report struct {
	Missing []MissingTranslation
	Invalid []Invalid
}

// AuditTranslations lists every field of posts, authors and categories
// that relies on the English fallback, and every document that fails
// Validate. Authors referenced by several posts are reported once.
func AuditTranslations(posts []Post, authors []Author, categories []Category) Report {
	var r Report
	seenAuthors := map[string]bool{}
	for _, a := range authors {
		seenAuthors[a.ID] = true
	}
	for _, p := range posts {
		if p.Author != nil && !seenAuthors[p.Author.ID] {
			seenAuthors[p.Author.ID] = true
			authors = append(authors, *p.Author)
		}
	}

	for _, p := range posts {
		add := r.adder("post", p.ID, p.Slug.Current)
		add("title", textMissing(&p.Title))
		add("excerpt", textMissing(p.Excerpt))
		add("body", blockMissing(p.Body))
		if p.MainImage != nil {
			add("mainImage.alt", textMissing(p.MainImage.Alt))
		}
		if p.SEO != nil {
			add("seo.metaTitle", textMissing(p.SEO.MetaTitle))
			add("seo.metaDescription", textMissing(p.SEO.MetaDescription))
		}
		r.check("post", p.ID, p.Slug.Current, p)
	}
	for _, a := range authors {
		add := r.adder("author", a.ID, a.Slug.Current)
		add("name", textMissing(&a.Name))
		add("bio", blockMissing(a.Bio))
		r.check("author", a.ID, a.Slug.Current, a)
	}
	for _, c := range categories {
		add := r.adder("category", c.ID, c.Slug.Current)
		add("title", textMissing(&c.Title))
		add("description", textMissing(c.Description))
		r.check("category", c.ID, c.Slug.Current, c)
	}

	sort.SliceStable(r.Missing, func(i, j int) bool {
		if r.Missing[i].DocType != r.Missing[j].DocType {
			return r.Missing[i].DocType < r.Missing[j].DocType
		}
		return r.Missing[i].Slug < r.Missing[j].Slug
	})
	return r
}

func (r *Report) adder(docType, id, slug string) func(field string, missing bool) {
	return func(field string, missing bool) {
		if missing {
			r.Missing = append(r.Missing, MissingTranslation{DocType: docType, ID: id, Slug: slug, Field: field})
		}
	}
}

func (r *Report) check(docType, id, slug string, doc any) {
	err := Validate(doc)
	if err == nil {
		return
	}
	inv := Invalid{DocType: docType, ID: id, Slug: slug}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			inv.Fields = append(inv.Fields, fe.Namespace())
		}
	} else {
		inv.Fields = []string{err.Error()}
	}
	r.Invalid = append(r.Invalid, inv)
}

func textMissing(t *BilingualText) bool {
	return t != nil && t.EN != "" && t.AR == ""
}

func blockMissing(b *BilingualBlock) bool {
	return b != nil && len(b.EN) > 0 && len(b.AR) == 0
}
