package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/ldschema"
)

// checker accumulates issues for one rule set.
type checker struct {
	typ    string
	env    Env
	issues ldschema.Issues
}

func newChecker(typ string, env Env) *checker { return &checker{typ: typ, env: env} }

func (c *checker) fail(at ldschema.PathRef, code, field string, kv ...any) {
	it := at.Issue(code, append([]any{"type", c.typ, "field", field}, kv...)...)
	it.Rule = c.typ
	c.issues = ldschema.AppendIssues(c.issues, it)
}

func (c *checker) warn(at ldschema.PathRef, code, field string, kv ...any) {
	it := at.Warning(code, append([]any{"type", c.typ, "field", field}, kv...)...)
	it.Rule = c.typ
	c.issues = ldschema.AppendIssues(c.issues, it)
}

// required reports a missing key and returns the value when present.
func (c *checker) required(node map[string]any, at ldschema.PathRef, key, field string) (any, bool) {
	v, ok := node[key]
	if !ok || !present(v) {
		c.fail(at.Field(key), ldschema.CodeRequired, field)
		return nil, false
	}
	return v, true
}

// recommended warns about a missing key.
func (c *checker) recommended(node map[string]any, at ldschema.PathRef, key, field string) {
	if v, ok := node[key]; !ok || !present(v) {
		c.warn(at.Field(key), ldschema.CodeRecommended, field)
	}
}

// rating checks that v is a number in [0,5].
func (c *checker) rating(v any, at ldschema.PathRef, field string) {
	f, ok := number(v)
	if !ok {
		c.fail(at, ldschema.CodeInvalidType, field, "expected", "number")
		return
	}
	if f < 0 || f > 5 {
		c.fail(at, ldschema.CodeDomainRange, field, "min", 0, "max", 5, "got", v)
	}
}

// date checks an optional date-valued key against the date policy.
func (c *checker) date(node map[string]any, at ldschema.PathRef, key, field string) {
	v, ok := node[key]
	if !ok || !present(v) {
		return
	}
	s, isStr := v.(string)
	switch {
	case !isStr:
		c.fail(at.Field(key), ldschema.CodeInvalidType, field, "expected", "string")
	case !c.env.validDate(s):
		c.fail(at.Field(key), ldschema.CodeInvalidFormat, field, "format", "date", "got", s)
	}
}

// position requires v to be the JSON integer want. Numeric strings are
// rejected.
func (c *checker) position(v any, at ldschema.PathRef, field string, want int) {
	if f, ok := v.(float64); ok && f == float64(want) {
		return
	}
	c.fail(at, ldschema.CodeInvalidValue, field, "expected", want, "got", display(v))
}

// typedAs checks an explicit @type value on a nested node.
func (c *checker) typedAs(node map[string]any, at ldschema.PathRef, field, want string) {
	got, _ := node["@type"].(string)
	if got != want {
		c.fail(at.Field("@type"), ldschema.CodeInvalidValue, field+".@type", "expected", strconv.Quote(want), "got", display(node["@type"]))
	}
}

// present mirrors the truthiness used for required fields: null and blank
// strings are missing, every other value (including 0 and false) is present.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(x) != ""
	default:
		return true
	}
}

// objects normalizes a single object or an array of objects. ok is false when
// v holds anything else.
func objects(v any) ([]map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return []map[string]any{x}, true
	case []any:
		out := make([]map[string]any, 0, len(x))
		for _, e := range x {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, false
			}
			out = append(out, m)
		}
		return out, true
	default:
		return nil, false
	}
}

// number accepts JSON numbers and numeric strings for rating values.
// Non-finite values are rejected.
func number(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func display(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprint(x)
	}
}

// fieldAt names an array element for messages, e.g. itemListElement[2].name.
func fieldAt(list string, i int, key string) string {
	f := list + "[" + strconv.Itoa(i) + "]"
	if key != "" {
		f += "." + key
	}
	return f
}

// typeLabel picks the @type string of node, or fallback when it is not a string.
func typeLabel(node map[string]any, fallback string) string {
	if s, ok := node["@type"].(string); ok && s != "" {
		return s
	}
	return fallback
}
