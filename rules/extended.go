package rules

import (
	"strings"

	"github.com/reoring/ldschema"
	"github.com/reoring/ldschema/format"
)

// WebSite requires name and url. A SearchAction target must carry the
// {search_term_string} placeholder.
func WebSite(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker("WebSite", env)
	c.required(node, at, "name", "name")
	c.required(node, at, "url", "url")

	act, ok := node["potentialAction"].(map[string]any)
	if !ok {
		return c.issues
	}
	p := at.Field("potentialAction")
	target, _ := act["target"].(map[string]any)
	tmpl, _ := target["urlTemplate"].(string)
	if !strings.Contains(tmpl, "{search_term_string}") {
		c.fail(p.Field("target").Field("urlTemplate"), ldschema.CodeInvalidValue, "potentialAction.target.urlTemplate",
			"expected", "a template containing {search_term_string}", "got", display(target["urlTemplate"]))
	}
	c.recommended(act, p, "query-input", "potentialAction.query-input")
	return c.issues
}

// LocalBusiness requires name and a structured address.
func LocalBusiness(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker("LocalBusiness", env)
	c.required(node, at, "name", "name")
	if v, ok := c.required(node, at, "address", "address"); ok {
		if _, isObj := v.(map[string]any); !isObj {
			c.fail(at.Field("address"), ldschema.CodeInvalidType, "address", "expected", "object")
		}
	}
	for _, k := range []string{"telephone", "url", "image", "openingHoursSpecification", "priceRange"} {
		c.recommended(node, at, k, k)
	}
	return c.issues
}

// VideoObject requires name, thumbnailUrl and a well-formed uploadDate, and
// recommends a description, a duration and one of contentUrl or embedUrl.
func VideoObject(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker("VideoObject", env)
	c.required(node, at, "name", "name")
	if v, ok := c.required(node, at, "thumbnailUrl", "thumbnailUrl"); ok {
		if s, isStr := v.(string); isStr && !format.IsValidURL(s) {
			c.fail(at.Field("thumbnailUrl"), ldschema.CodeInvalidFormat, "thumbnailUrl", "format", "url", "got", s)
		}
	}
	if _, ok := c.required(node, at, "uploadDate", "uploadDate"); ok {
		c.date(node, at, "uploadDate", "uploadDate")
	}
	c.recommended(node, at, "description", "description")
	c.recommended(node, at, "duration", "duration")
	if !present(node["contentUrl"]) && !present(node["embedUrl"]) {
		c.warn(at.Field("contentUrl"), ldschema.CodeRecommended, "contentUrl")
	}
	return c.issues
}

// HowTo requires name and a non-empty list of HowToSteps with text, numbered
// 1..n when positions are given.
func HowTo(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker("HowTo", env)
	c.required(node, at, "name", "name")
	c.recommended(node, at, "description", "description")
	list, ok := c.list(node, at, "step", true)
	if !ok {
		return c.issues
	}
	for i, raw := range list {
		p := at.Field("step").Index(i)
		s, ok := raw.(map[string]any)
		if !ok {
			c.fail(p, ldschema.CodeInvalidType, fieldAt("step", i, ""), "expected", "object")
			continue
		}
		c.typedAs(s, p, fieldAt("step", i, ""), "HowToStep")
		c.required(s, p, "text", fieldAt("step", i, "text"))
		if pos, ok := s["position"]; ok {
			c.position(pos, p.Field("position"), fieldAt("step", i, "position"), i+1)
		}
	}
	return c.issues
}
