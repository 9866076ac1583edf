package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/reoring/ldschema/builder"
	"github.com/reoring/ldschema/htmlsafe"
)

// generator decodes a YAML record and renders it with b.
type generator func(b *builder.Builder, data []byte, stripHTML bool) (string, error)

var generators = map[string]generator{
	"product":       record(func(b *builder.Builder, in builder.ProductInput) string { return b.Product(in) }),
	"blog":          record(func(b *builder.Builder, in builder.BlogPostInput) string { return b.BlogPosting(in) }),
	"article":       record(func(b *builder.Builder, in builder.BlogPostInput) string { return b.Article(in) }),
	"organization":  record(func(b *builder.Builder, in builder.OrganizationInput) string { return b.Organization(in) }),
	"breadcrumbs":   record(func(b *builder.Builder, in []builder.BreadcrumbItem) string { return b.Breadcrumbs(in) }),
	"faq":           record(func(b *builder.Builder, in []builder.FAQItem) string { return b.FAQ(in) }),
	"website":       record(func(b *builder.Builder, in builder.WebSiteInput) string { return b.WebSite(in) }),
	"localbusiness": record(func(b *builder.Builder, in builder.LocalBusinessInput) string { return b.LocalBusiness(in) }),
	"video":         record(func(b *builder.Builder, in builder.VideoInput) string { return b.Video(in) }),
	"howto":         record(func(b *builder.Builder, in builder.HowToInput) string { return b.HowTo(in) }),
}

func generatorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func record[T any](build func(*builder.Builder, T) string) generator {
	return func(b *builder.Builder, data []byte, stripHTML bool) (string, error) {
		var in T
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("decode record: %w", err)
		}
		if stripHTML {
			htmlsafe.StripRecord(&in)
		}
		return build(b, in), nil
	}
}
