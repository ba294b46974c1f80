package portal

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonWordChars  = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

type Stringable struct {
	value string
}

func NewStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

// Slug derives the URL identifier used by posts and categories: case-folded,
// non-word characters stripped, whitespace runs collapsed to single hyphens.
// It is idempotent: Slug(Slug(x)) == Slug(x).
func (s Stringable) Slug() string {
	slug := s.ToLower()

	slug = nonWordChars.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// TagSlug derives tag slugs. Unlike Slug it strips no punctuation, it only
// folds case and collapses whitespace runs. The two derivations differ in the
// upstream data model and are kept separate on purpose.
func (s Stringable) TagSlug() string {
	return whitespaceRun.ReplaceAllString(s.ToLower(), "-")
}
