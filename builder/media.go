package builder

import "strings"

// LocalBusiness renders a LocalBusiness document. Each opening-hours entry is
// split on whitespace into day, opens and closes without further checks.
func (b *Builder) LocalBusiness(in LocalBusinessInput) string {
	doc := localBusinessDoc{
		Context:     schemaContext,
		Type:        "LocalBusiness",
		Name:        in.Name,
		Description: in.Description,
		URL:         b.absURL(in.URL),
		Telephone:   in.Telephone,
		Email:       in.Email,
		Address:     address(in.Address),
		Image:       in.Image,
		PriceRange:  in.PriceRange,
	}
	for _, h := range in.OpeningHours {
		doc.OpeningHoursSpecification = append(doc.OpeningHoursSpecification, openingHours(h))
	}
	return encode(doc)
}

func openingHours(entry string) openingHoursSpecDoc {
	hours := openingHoursSpecDoc{Type: "OpeningHoursSpecification"}
	parts := strings.Fields(entry)
	if len(parts) > 0 {
		hours.DayOfWeek = parts[0]
	}
	if len(parts) > 1 {
		hours.Opens = parts[1]
	}
	if len(parts) > 2 {
		hours.Closes = parts[2]
	}
	return hours
}

// Video renders a VideoObject. Duration and the content/embed URLs pass
// through unchecked.
func (b *Builder) Video(in VideoInput) string {
	return encode(videoDoc{
		Context:      schemaContext,
		Type:         "VideoObject",
		Name:         in.Name,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		UploadDate:   in.UploadDate,
		Duration:     in.Duration,
		ContentURL:   in.ContentURL,
		EmbedURL:     in.EmbedURL,
	})
}

// HowTo renders a HowTo document. Steps are numbered 1..n in slice order.
func (b *Builder) HowTo(in HowToInput) string {
	doc := howToDoc{
		Context:     schemaContext,
		Type:        "HowTo",
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		TotalTime:   in.TotalTime,
		Step:        make([]howToStepDoc, 0, len(in.Steps)),
	}
	for i, s := range in.Steps {
		doc.Step = append(doc.Step, howToStepDoc{
			Type:     "HowToStep",
			Position: i + 1,
			Name:     s.Name,
			Text:     s.Text,
			Image:    s.Image,
			URL:      b.absURL(s.URL),
		})
	}
	return encode(doc)
}
