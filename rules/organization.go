package rules

import "github.com/reoring/ldschema"

// Organization requires name and url. The url's syntax is covered by the
// validator's generic URL check; foundingDate must be a valid date if given.
func Organization(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker("Organization", env)
	c.required(node, at, "name", "name")
	c.required(node, at, "url", "url")
	c.recommended(node, at, "logo", "logo")
	c.recommended(node, at, "description", "description")
	c.recommended(node, at, "contactPoint", "contactPoint")
	c.date(node, at, "foundingDate", "foundingDate")
	return c.issues
}
