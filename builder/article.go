package builder

import "strings"

// BlogPosting renders a BlogPosting document.
func (b *Builder) BlogPosting(in BlogPostInput) string {
	return encode(b.article("BlogPosting", in))
}

// Article renders an Article document. The shape matches BlogPosting.
func (b *Builder) Article(in BlogPostInput) string {
	return encode(b.article("Article", in))
}

func (b *Builder) article(typ string, in BlogPostInput) articleDoc {
	doc := articleDoc{
		Context:       schemaContext,
		Type:          typ,
		Headline:      in.Title,
		Description:   in.Excerpt,
		DatePublished: in.PublishDate,
		DateModified:  orDefault(in.ModifiedDate, in.PublishDate),
		Author:        personDoc{Type: "Person", Name: in.Author.Name, Image: in.Author.Image},
		Publisher: publisherDoc{
			Type: "Organization",
			Name: b.cfg.OrganizationName,
			Logo: imageDoc{Type: "ImageObject", URL: b.cfg.OrganizationLogo},
		},
		MainEntityOfPage: webPageRef{Type: "WebPage", ID: b.absURL(in.URL)},
		WordCount:        in.WordCount,
	}
	if in.FeaturedImage != "" {
		doc.Image = []string{in.FeaturedImage}
	}
	if len(in.Categories) > 0 {
		doc.Keywords = strings.Join(in.Categories, ", ")
		doc.ArticleSection = in.Categories[0]
	}
	return doc
}
