package builder

// Organization renders an Organization document. contactPoint is present only
// when an email or phone is supplied.
func (b *Builder) Organization(in OrganizationInput) string {
	doc := organizationDoc{
		Context:      schemaContext,
		Type:         "Organization",
		Name:         in.Name,
		URL:          b.absURL(in.URL),
		Logo:         in.Logo,
		Description:  in.Description,
		SameAs:       in.SocialProfiles,
		FoundingDate: in.FoundingDate,
	}
	if in.Email != "" || in.Phone != "" {
		doc.ContactPoint = &contactPointDoc{
			Type:        "ContactPoint",
			Telephone:   in.Phone,
			Email:       in.Email,
			ContactType: "Customer Service",
		}
	}
	if in.Address != nil {
		a := address(*in.Address)
		doc.Address = &a
	}
	return encode(doc)
}
