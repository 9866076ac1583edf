package rules

import (
	"github.com/reoring/ldschema"
	"github.com/reoring/ldschema/format"
)

// BreadcrumbList requires a non-empty itemListElement of ListItems whose
// positions run 1..n in list order, each with a name and an item URL.
func BreadcrumbList(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker("BreadcrumbList", env)
	list, ok := c.list(node, at, "itemListElement", true)
	if !ok {
		return c.issues
	}
	for i, raw := range list {
		p := at.Field("itemListElement").Index(i)
		it, ok := raw.(map[string]any)
		if !ok {
			c.fail(p, ldschema.CodeInvalidType, fieldAt("itemListElement", i, ""), "expected", "object")
			continue
		}
		c.typedAs(it, p, fieldAt("itemListElement", i, ""), "ListItem")
		if pos, ok := c.required(it, p, "position", fieldAt("itemListElement", i, "position")); ok {
			c.position(pos, p.Field("position"), fieldAt("itemListElement", i, "position"), i+1)
		}
		c.required(it, p, "name", fieldAt("itemListElement", i, "name"))
		if item, ok := c.required(it, p, "item", fieldAt("itemListElement", i, "item")); ok {
			c.itemURL(item, p.Field("item"), fieldAt("itemListElement", i, "item"))
		}
	}
	return c.issues
}

// itemURL accepts a URL string or a node carrying the URL in @id.
func (c *checker) itemURL(v any, at ldschema.PathRef, field string) {
	switch x := v.(type) {
	case string:
		if !format.IsValidURL(x) {
			c.fail(at, ldschema.CodeInvalidFormat, field, "format", "url", "got", x)
		}
	case map[string]any:
		id, _ := x["@id"].(string)
		if !format.IsValidURL(id) {
			c.fail(at.Field("@id"), ldschema.CodeInvalidFormat, field+".@id", "format", "url", "got", display(x["@id"]))
		}
	default:
		c.fail(at, ldschema.CodeInvalidType, field, "expected", "string")
	}
}

// FAQPage requires a mainEntity array of answered Questions. An empty list is
// only a warning.
func FAQPage(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker("FAQPage", env)
	list, ok := c.list(node, at, "mainEntity", false)
	if !ok {
		return c.issues
	}
	if len(list) == 0 {
		c.warn(at.Field("mainEntity"), ldschema.CodeTooShort, "mainEntity")
	}
	for i, raw := range list {
		p := at.Field("mainEntity").Index(i)
		q, ok := raw.(map[string]any)
		if !ok {
			c.fail(p, ldschema.CodeInvalidType, fieldAt("mainEntity", i, ""), "expected", "object")
			continue
		}
		c.typedAs(q, p, fieldAt("mainEntity", i, ""), "Question")
		c.required(q, p, "name", fieldAt("mainEntity", i, "name"))
		ans, ok := q["acceptedAnswer"].(map[string]any)
		if !ok {
			c.fail(p.Field("acceptedAnswer"), ldschema.CodeRequired, fieldAt("mainEntity", i, "acceptedAnswer"))
			continue
		}
		ap := p.Field("acceptedAnswer")
		c.typedAs(ans, ap, fieldAt("mainEntity", i, "acceptedAnswer"), "Answer")
		c.required(ans, ap, "text", fieldAt("mainEntity", i, "acceptedAnswer.text"))
	}
	return c.issues
}

// list requires node[key] to be an array; nonEmpty turns an empty array into
// an error.
func (c *checker) list(node map[string]any, at ldschema.PathRef, key string, nonEmpty bool) ([]any, bool) {
	v, ok := c.required(node, at, key, key)
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	if !ok {
		c.fail(at.Field(key), ldschema.CodeInvalidType, key, "expected", "array")
		return nil, false
	}
	if nonEmpty && len(list) == 0 {
		c.fail(at.Field(key), ldschema.CodeTooShort, key)
		return nil, false
	}
	return list, true
}
