package builder

import (
	"math"
	"strconv"
)

// Wire shapes. Field order is the emitted key order.

const (
	schemaContext = "https://schema.org"
	inStock       = "https://schema.org/InStock"
	outOfStock    = "https://schema.org/OutOfStock"
)

// number encodes non-finite values as null so encoding never fails.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

type typed struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type productDoc struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Image           []string         `json:"image,omitempty"`
	SKU             string           `json:"sku,omitempty"`
	Brand           typed            `json:"brand"`
	Offers          offerDoc         `json:"offers"`
	AggregateRating *aggregateRating `json:"aggregateRating,omitempty"`
	Review          []reviewDoc      `json:"review,omitempty"`
}

type offerDoc struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
	URL           string `json:"url,omitempty"`
}

type aggregateRating struct {
	Type        string `json:"@type"`
	RatingValue number `json:"ratingValue"`
	ReviewCount int    `json:"reviewCount"`
	BestRating  int    `json:"bestRating"`
	WorstRating int    `json:"worstRating"`
}

type ratingDoc struct {
	Type        string `json:"@type"`
	RatingValue number `json:"ratingValue"`
	BestRating  int    `json:"bestRating"`
	WorstRating int    `json:"worstRating"`
}

type reviewDoc struct {
	Type          string    `json:"@type"`
	Author        typed     `json:"author"`
	ReviewRating  ratingDoc `json:"reviewRating"`
	ReviewBody    string    `json:"reviewBody"`
	DatePublished string    `json:"datePublished,omitempty"`
}

type articleDoc struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description"`
	Image            []string     `json:"image,omitempty"`
	DatePublished    string       `json:"datePublished"`
	DateModified     string       `json:"dateModified"`
	Author           personDoc    `json:"author"`
	Publisher        publisherDoc `json:"publisher"`
	MainEntityOfPage webPageRef   `json:"mainEntityOfPage"`
	WordCount        *int         `json:"wordCount,omitempty"`
	Keywords         string       `json:"keywords,omitempty"`
	ArticleSection   string       `json:"articleSection,omitempty"`
}

type personDoc struct {
	Type  string `json:"@type"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type publisherDoc struct {
	Type string   `json:"@type"`
	Name string   `json:"name"`
	Logo imageDoc `json:"logo"`
}

type imageDoc struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

type webPageRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type organizationDoc struct {
	Context      string           `json:"@context"`
	Type         string           `json:"@type"`
	Name         string           `json:"name"`
	URL          string           `json:"url"`
	Logo         string           `json:"logo"`
	Description  string           `json:"description,omitempty"`
	ContactPoint *contactPointDoc `json:"contactPoint,omitempty"`
	Address      *postalAddress   `json:"address,omitempty"`
	SameAs       []string         `json:"sameAs,omitempty"`
	FoundingDate string           `json:"foundingDate,omitempty"`
}

type contactPointDoc struct {
	Type        string `json:"@type"`
	Telephone   string `json:"telephone,omitempty"`
	Email       string `json:"email,omitempty"`
	ContactType string `json:"contactType"`
}

type postalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

type breadcrumbDoc struct {
	Context         string        `json:"@context"`
	Type            string        `json:"@type"`
	ItemListElement []listItemDoc `json:"itemListElement"`
}

type listItemDoc struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type faqDoc struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	MainEntity []questionDoc `json:"mainEntity"`
}

type questionDoc struct {
	Type           string    `json:"@type"`
	Name           string    `json:"name"`
	AcceptedAnswer answerDoc `json:"acceptedAnswer"`
}

type answerDoc struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type webSiteDoc struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	PotentialAction *searchActionDoc `json:"potentialAction,omitempty"`
}

type searchActionDoc struct {
	Type       string     `json:"@type"`
	Target     entryPoint `json:"target"`
	QueryInput string     `json:"query-input"`
}

type entryPoint struct {
	Type        string `json:"@type"`
	URLTemplate string `json:"urlTemplate"`
}

type localBusinessDoc struct {
	Context                   string                `json:"@context"`
	Type                      string                `json:"@type"`
	Name                      string                `json:"name"`
	Description               string                `json:"description"`
	URL                       string                `json:"url"`
	Telephone                 string                `json:"telephone"`
	Email                     string                `json:"email"`
	Address                   postalAddress         `json:"address"`
	Image                     string                `json:"image,omitempty"`
	OpeningHoursSpecification []openingHoursSpecDoc `json:"openingHoursSpecification,omitempty"`
	PriceRange                string                `json:"priceRange,omitempty"`
}

type openingHoursSpecDoc struct {
	Type      string `json:"@type"`
	DayOfWeek string `json:"dayOfWeek,omitempty"`
	Opens     string `json:"opens,omitempty"`
	Closes    string `json:"closes,omitempty"`
}

type videoDoc struct {
	Context      string `json:"@context"`
	Type         string `json:"@type"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	UploadDate   string `json:"uploadDate"`
	Duration     string `json:"duration,omitempty"`
	ContentURL   string `json:"contentUrl,omitempty"`
	EmbedURL     string `json:"embedUrl,omitempty"`
}

type howToDoc struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image,omitempty"`
	TotalTime   string         `json:"totalTime,omitempty"`
	Step        []howToStepDoc `json:"step"`
}

type howToStepDoc struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	Image    string `json:"image,omitempty"`
	URL      string `json:"url,omitempty"`
}
