package builder

import "strconv"

// Product renders a Product document with a single Offer. aggregateRating is
// added only when in.Rating is set, review only when in.Reviews is non-empty.
func (b *Builder) Product(in ProductInput) string {
	doc := productDoc{
		Context:     schemaContext,
		Type:        "Product",
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Images,
		SKU:         in.SKU,
		Brand:       typed{Type: "Brand", Name: orDefault(in.Brand, b.cfg.OrganizationName)},
		Offers: offerDoc{
			Type:          "Offer",
			Price:         strconv.FormatFloat(in.Price, 'f', 2, 64),
			PriceCurrency: orDefault(in.Currency, b.cfg.Currency),
			Availability:  availability(in.InStock),
			URL:           b.absURL(in.URL),
		},
	}
	if in.Rating != nil {
		doc.AggregateRating = &aggregateRating{
			Type:        "AggregateRating",
			RatingValue: number(in.Rating.Value),
			ReviewCount: in.Rating.Count,
			BestRating:  5,
			WorstRating: 1,
		}
	}
	for _, r := range in.Reviews {
		doc.Review = append(doc.Review, reviewDoc{
			Type:   "Review",
			Author: typed{Type: "Person", Name: r.Author},
			ReviewRating: ratingDoc{
				Type:        "Rating",
				RatingValue: number(r.Rating),
				BestRating:  5,
				WorstRating: 1,
			},
			ReviewBody:    r.Body,
			DatePublished: r.DatePublished,
		})
	}
	return encode(doc)
}

func availability(stocked bool) string {
	if stocked {
		return inStock
	}
	return outOfStock
}
