package rules

import "github.com/reoring/ldschema"

// Product checks name, image, offers, ratings and review dates. description,
// brand, sku and offers.availability are recommended.
func Product(node map[string]any, at ldschema.PathRef, env Env) ldschema.Issues {
	c := newChecker("Product", env)

	c.required(node, at, "name", "name")
	c.recommended(node, at, "description", "description")

	if img, ok := c.required(node, at, "image", "image"); ok {
		switch list := img.(type) {
		case []any:
			if len(list) == 0 {
				c.fail(at.Field("image"), ldschema.CodeTooShort, "image")
			}
		default:
			c.fail(at.Field("image"), ldschema.CodeInvalidType, "image", "expected", "array")
		}
	}

	c.recommended(node, at, "brand", "brand")
	c.recommended(node, at, "sku", "sku")

	if v, ok := c.required(node, at, "offers", "offers"); ok {
		c.offers(v, at.Field("offers"))
	}

	if v, ok := node["aggregateRating"]; ok && v != nil {
		c.aggregateRating(v, at.Field("aggregateRating"))
	}

	if v, ok := node["review"]; ok && v != nil {
		reviews, ok := objects(v)
		if !ok {
			c.fail(at.Field("review"), ldschema.CodeInvalidType, "review", "expected", "array")
		}
		_, isList := v.([]any)
		for i, r := range reviews {
			p := at.Field("review")
			if isList {
				p = p.Index(i)
			}
			c.date(r, p, "datePublished", fieldAt("review", i, "datePublished"))
			rat, ok := r["reviewRating"].(map[string]any)
			if !ok {
				continue
			}
			if rv, ok := rat["ratingValue"]; ok {
				c.rating(rv, p.Field("reviewRating").Field("ratingValue"), fieldAt("review", i, "reviewRating.ratingValue"))
			}
		}
	}

	return c.issues
}

func (c *checker) offers(v any, at ldschema.PathRef) {
	offers, ok := objects(v)
	if !ok {
		c.fail(at, ldschema.CodeInvalidType, "offers", "expected", "object")
		return
	}
	_, isList := v.([]any)
	if isList && len(offers) == 0 {
		c.fail(at, ldschema.CodeTooShort, "offers")
		return
	}
	for i, o := range offers {
		p := at
		if isList {
			p = at.Index(i)
		}
		c.required(o, p, "price", "offers.price")
		c.required(o, p, "priceCurrency", "offers.priceCurrency")
		c.recommended(o, p, "availability", "offers.availability")
	}
}

func (c *checker) aggregateRating(v any, at ldschema.PathRef) {
	agg, ok := v.(map[string]any)
	if !ok {
		c.fail(at, ldschema.CodeInvalidType, "aggregateRating", "expected", "object")
		return
	}
	if rv, ok := c.required(agg, at, "ratingValue", "aggregateRating.ratingValue"); ok {
		c.rating(rv, at.Field("ratingValue"), "aggregateRating.ratingValue")
	}
	c.required(agg, at, "reviewCount", "aggregateRating.reviewCount")
}
