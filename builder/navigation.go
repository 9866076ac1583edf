package builder

// Breadcrumbs renders a BreadcrumbList. Positions are 1-based and follow the
// order of items exactly.
func (b *Builder) Breadcrumbs(items []BreadcrumbItem) string {
	doc := breadcrumbDoc{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: make([]listItemDoc, 0, len(items)),
	}
	for i, it := range items {
		doc.ItemListElement = append(doc.ItemListElement, listItemDoc{
			Type:     "ListItem",
			Position: i + 1,
			Name:     it.Name,
			Item:     b.absURL(it.URL),
		})
	}
	return encode(doc)
}

// FAQ renders a FAQPage with one Question per item.
func (b *Builder) FAQ(items []FAQItem) string {
	doc := faqDoc{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: make([]questionDoc, 0, len(items)),
	}
	for _, it := range items {
		doc.MainEntity = append(doc.MainEntity, questionDoc{
			Type:           "Question",
			Name:           it.Question,
			AcceptedAnswer: answerDoc{Type: "Answer", Text: it.Answer},
		})
	}
	return encode(doc)
}

// WebSite renders a WebSite document, with a sitelinks SearchAction when
// in.SearchURL is set.
func (b *Builder) WebSite(in WebSiteInput) string {
	doc := webSiteDoc{
		Context: schemaContext,
		Type:    "WebSite",
		Name:    in.Name,
		URL:     b.absURL(in.URL),
	}
	if in.SearchURL != "" {
		doc.PotentialAction = &searchActionDoc{
			Type: "SearchAction",
			Target: entryPoint{
				Type:        "EntryPoint",
				URLTemplate: b.absURL(in.SearchURL) + "?q={search_term_string}",
			},
			QueryInput: "required name=search_term_string",
		}
	}
	return encode(doc)
}
