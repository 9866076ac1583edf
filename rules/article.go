package rules

import (
	"unicode/utf8"

	"github.com/reoring/ldschema"
)

// MaxHeadlineLength is the headline length above which a warning is raised.
const MaxHeadlineLength = 110

// Article checks BlogPosting and Article documents: headline, image,
// datePublished, a named author and a publisher with name and logo.url.
func Article(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker(typeLabel(node, "Article"), env)

	if v, ok := c.required(node, at, "headline", "headline"); ok {
		if s, isStr := v.(string); isStr {
			if n := utf8.RuneCountInString(s); n > MaxHeadlineLength {
				c.warn(at.Field("headline"), ldschema.CodeTooLong, "headline", "max", MaxHeadlineLength, "got", n)
			}
		}
	}

	if v, ok := c.required(node, at, "image", "image"); ok {
		if list, isList := v.([]any); isList && len(list) == 0 {
			c.fail(at.Field("image"), ldschema.CodeTooShort, "image")
		}
	}

	c.required(node, at, "datePublished", "datePublished")

	if v, ok := c.required(node, at, "author", "author"); ok {
		authors, ok := objects(v)
		if !ok {
			c.fail(at.Field("author"), ldschema.CodeInvalidType, "author", "expected", "object")
		}
		_, isList := v.([]any)
		for i, a := range authors {
			p := at.Field("author")
			if isList {
				p = p.Index(i)
			}
			c.required(a, p, "name", "author.name")
		}
	}

	if v, ok := c.required(node, at, "publisher", "publisher"); ok {
		c.publisher(v, at.Field("publisher"))
	}

	c.recommended(node, at, "description", "description")
	c.recommended(node, at, "mainEntityOfPage", "mainEntityOfPage")
	c.recommended(node, at, "dateModified", "dateModified")

	return c.issues
}

func (c *checker) publisher(v any, at ldschema.PathRef) {
	pub, ok := v.(map[string]any)
	if !ok {
		c.fail(at, ldschema.CodeInvalidType, "publisher", "expected", "object")
		return
	}
	c.required(pub, at, "name", "publisher.name")
	logo, ok := pub["logo"].(map[string]any)
	if !ok || !present(logo["url"]) {
		c.fail(at.Field("logo").Field("url"), ldschema.CodeRequired, "publisher.logo.url")
	}
}
