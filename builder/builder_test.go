package builder_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/reoring/ldschema"
	"github.com/reoring/ldschema/builder"
)

func testBuilder() *builder.Builder {
	return builder.New(ldschema.Config{
		BaseURL:          "https://www.purrify.ca",
		OrganizationName: "Purrify",
		OrganizationLogo: "https://www.purrify.ca/logo.png",
		Currency:         "CAD",
	})
}

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, s)
	}
	return m
}

func TestProduct_Full(t *testing.T) {
	out := testBuilder().Product(builder.ProductInput{
		Name:        "Purrify 50g",
		Description: "Activated carbon litter additive",
		Images:      []string{"https://www.purrify.ca/b.jpg", "https://www.purrify.ca/a.jpg"},
		Price:       6.99,
		Currency:    "USD",
		InStock:     true,
		URL:         "/products/trial-size",
		SKU:         "PUR-50",
		Brand:       "Purrify Labs",
		Rating:      &builder.RatingInput{Value: 4.8, Count: 127},
		Reviews: []builder.ReviewInput{
			{Author: "Sarah", Rating: 5, Body: "No more smell", DatePublished: "2025-01-02"},
		},
	})

	want := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        "Purrify 50g",
		"description": "Activated carbon litter additive",
		"image":       []any{"https://www.purrify.ca/b.jpg", "https://www.purrify.ca/a.jpg"},
		"sku":         "PUR-50",
		"brand":       map[string]any{"@type": "Brand", "name": "Purrify Labs"},
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "6.99",
			"priceCurrency": "USD",
			"availability":  "https://schema.org/InStock",
			"url":           "https://www.purrify.ca/products/trial-size",
		},
		"aggregateRating": map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": 4.8,
			"reviewCount": float64(127),
			"bestRating":  float64(5),
			"worstRating": float64(1),
		},
		"review": []any{
			map[string]any{
				"@type":  "Review",
				"author": map[string]any{"@type": "Person", "name": "Sarah"},
				"reviewRating": map[string]any{
					"@type":       "Rating",
					"ratingValue": float64(5),
					"bestRating":  float64(5),
					"worstRating": float64(1),
				},
				"reviewBody":    "No more smell",
				"datePublished": "2025-01-02",
			},
		},
	}
	if diff := cmp.Diff(want, decode(t, out)); diff != "" {
		t.Fatalf("product mismatch (-want +got):\n%s", diff)
	}
}

func TestProduct_DefaultsAndOptionalBlocks(t *testing.T) {
	got := decode(t, testBuilder().Product(builder.ProductInput{
		Name:   "Purrify 120g",
		Images: []string{"https://www.purrify.ca/120.jpg"},
		Price:  19.9,
	}))

	if _, ok := got["aggregateRating"]; ok {
		t.Fatalf("aggregateRating must be absent without rating: %v", got)
	}
	if _, ok := got["review"]; ok {
		t.Fatalf("review must be absent without reviews: %v", got)
	}
	if _, ok := got["sku"]; ok {
		t.Fatalf("sku must be absent when not supplied")
	}
	offers := got["offers"].(map[string]any)
	if offers["price"] != "19.90" {
		t.Fatalf("price must be a fixed 2-decimal string, got %v", offers["price"])
	}
	if offers["priceCurrency"] != "CAD" {
		t.Fatalf("currency must fall back to config, got %v", offers["priceCurrency"])
	}
	if offers["availability"] != "https://schema.org/OutOfStock" {
		t.Fatalf("unexpected availability %v", offers["availability"])
	}
	if brand := got["brand"].(map[string]any); brand["name"] != "Purrify" {
		t.Fatalf("brand must fall back to org name, got %v", brand["name"])
	}
}

func TestProduct_RatingValueRoundTrips(t *testing.T) {
	for _, v := range []float64{0, 1, 3.5, 4.75, 5, 7} {
		got := decode(t, testBuilder().Product(builder.ProductInput{Rating: &builder.RatingInput{Value: v, Count: 1}}))
		rv := got["aggregateRating"].(map[string]any)["ratingValue"]
		if rv != v {
			t.Fatalf("ratingValue %v, want %v", rv, v)
		}
	}
}

func TestProduct_NonFiniteRatingEncodesNull(t *testing.T) {
	got := decode(t, testBuilder().Product(builder.ProductInput{Rating: &builder.RatingInput{Value: math.NaN()}}))
	if rv := got["aggregateRating"].(map[string]any)["ratingValue"]; rv != nil {
		t.Fatalf("expected null ratingValue, got %v", rv)
	}
}

func TestEncoding_PrettyAndUnescaped(t *testing.T) {
	out := testBuilder().FAQ([]builder.FAQItem{{Question: "Is it <safe> & clean?", Answer: "Yes"}})
	if !strings.HasPrefix(out, "{\n  \"@context\": \"https://schema.org\",\n  \"@type\": \"FAQPage\"") {
		t.Fatalf("unexpected layout:\n%s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("output must not end with a newline")
	}
	if !strings.Contains(out, "Is it <safe> & clean?") {
		t.Fatalf("builder must not HTML-escape values:\n%s", out)
	}
}

func TestBlogPosting_Shape(t *testing.T) {
	in := builder.BlogPostInput{
		Title:         "How activated carbon works",
		Excerpt:       "The science of odor control",
		FeaturedImage: "https://www.purrify.ca/blog/carbon.jpg",
		PublishDate:   "2025-01-20T10:00:00Z",
		Author:        builder.AuthorInput{Name: "Dr. Chen"},
		URL:           "/blog/activated-carbon",
		Categories:    []string{"Science", "Odor Control"},
		Tags:          []string{"carbon"},
		WordCount:     intPtr(1200),
	}
	got := decode(t, testBuilder().BlogPosting(in))

	want := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      "How activated carbon works",
		"description":   "The science of odor control",
		"image":         []any{"https://www.purrify.ca/blog/carbon.jpg"},
		"datePublished": "2025-01-20T10:00:00Z",
		"dateModified":  "2025-01-20T10:00:00Z",
		"author":        map[string]any{"@type": "Person", "name": "Dr. Chen"},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  "Purrify",
			"logo":  map[string]any{"@type": "ImageObject", "url": "https://www.purrify.ca/logo.png"},
		},
		"mainEntityOfPage": map[string]any{"@type": "WebPage", "@id": "https://www.purrify.ca/blog/activated-carbon"},
		"wordCount":        float64(1200),
		"keywords":         "Science, Odor Control",
		"articleSection":   "Science",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blog posting mismatch (-want +got):\n%s", diff)
	}

	in.WordCount = intPtr(0)
	if wc, ok := decode(t, testBuilder().BlogPosting(in))["wordCount"]; !ok || wc != float64(0) {
		t.Fatalf("explicit zero wordCount must be emitted, got %v (present=%v)", wc, ok)
	}
	in.WordCount = nil
	if _, ok := decode(t, testBuilder().BlogPosting(in))["wordCount"]; ok {
		t.Fatalf("unset wordCount must be omitted")
	}

	in.ModifiedDate = "2025-02-01"
	art := decode(t, testBuilder().Article(in))
	if art["@type"] != "Article" || art["dateModified"] != "2025-02-01" {
		t.Fatalf("unexpected article: %v", art)
	}
}

func TestOrganization_ContactPointAndAddress(t *testing.T) {
	b := testBuilder()
	bare := decode(t, b.Organization(builder.OrganizationInput{Name: "Purrify", URL: "https://www.purrify.ca", Logo: "https://www.purrify.ca/logo.png"}))
	for _, k := range []string{"contactPoint", "address", "sameAs", "foundingDate"} {
		if _, ok := bare[k]; ok {
			t.Fatalf("%s must be absent when not supplied", k)
		}
	}

	full := decode(t, b.Organization(builder.OrganizationInput{
		Name:           "Purrify",
		URL:            "https://www.purrify.ca",
		Logo:           "https://www.purrify.ca/logo.png",
		Phone:          "+1-250-432-9352",
		Address:        &builder.AddressInput{Locality: "Mirabel", Region: "QC", Country: "CA"},
		SocialProfiles: []string{"https://www.instagram.com/purrify"},
		FoundingDate:   "2023",
	}))
	want := map[string]any{
		"@type":       "ContactPoint",
		"telephone":   "+1-250-432-9352",
		"contactType": "Customer Service",
	}
	if diff := cmp.Diff(want, full["contactPoint"]); diff != "" {
		t.Fatalf("contactPoint mismatch (-want +got):\n%s", diff)
	}
	wantAddr := map[string]any{"@type": "PostalAddress", "addressLocality": "Mirabel", "addressRegion": "QC", "addressCountry": "CA"}
	if diff := cmp.Diff(wantAddr, full["address"]); diff != "" {
		t.Fatalf("address mismatch (-want +got):\n%s", diff)
	}
	if full["foundingDate"] != "2023" {
		t.Fatalf("foundingDate must pass through")
	}
}

func TestBreadcrumbs_PositionsFollowInputOrder(t *testing.T) {
	got := decode(t, testBuilder().Breadcrumbs([]builder.BreadcrumbItem{
		{Name: "Home", URL: "/"},
		{Name: "Blog", URL: "/blog"},
		{Name: "Another site", URL: "https://example.com/x"},
	}))
	items := got["itemListElement"].([]any)
	wantNames := []string{"Home", "Blog", "Another site"}
	wantItems := []string{"https://www.purrify.ca/", "https://www.purrify.ca/blog", "https://example.com/x"}
	for i, raw := range items {
		it := raw.(map[string]any)
		if it["position"] != float64(i+1) {
			t.Fatalf("item %d position %v", i, it["position"])
		}
		if it["@type"] != "ListItem" || it["name"] != wantNames[i] || it["item"] != wantItems[i] {
			t.Fatalf("item %d mismatch: %v", i, it)
		}
	}
}

func TestWebSite_SearchAction(t *testing.T) {
	b := testBuilder()
	plain := decode(t, b.WebSite(builder.WebSiteInput{Name: "Purrify", URL: "https://www.purrify.ca"}))
	if _, ok := plain["potentialAction"]; ok {
		t.Fatalf("potentialAction must be absent without searchUrl")
	}
	got := decode(t, b.WebSite(builder.WebSiteInput{Name: "Purrify", URL: "https://www.purrify.ca", SearchURL: "https://www.purrify.ca/search"}))
	want := map[string]any{
		"@type":       "SearchAction",
		"target":      map[string]any{"@type": "EntryPoint", "urlTemplate": "https://www.purrify.ca/search?q={search_term_string}"},
		"query-input": "required name=search_term_string",
	}
	if diff := cmp.Diff(want, got["potentialAction"]); diff != "" {
		t.Fatalf("potentialAction mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalBusiness_OpeningHoursSplit(t *testing.T) {
	got := decode(t, testBuilder().LocalBusiness(builder.LocalBusinessInput{
		Name:         "Purrify HQ",
		OpeningHours: []string{"Monday 09:00 17:00", "Saturday  10:00   14:00", "Sunday"},
		PriceRange:   "$$",
	}))
	want := []any{
		map[string]any{"@type": "OpeningHoursSpecification", "dayOfWeek": "Monday", "opens": "09:00", "closes": "17:00"},
		map[string]any{"@type": "OpeningHoursSpecification", "dayOfWeek": "Saturday", "opens": "10:00", "closes": "14:00"},
		map[string]any{"@type": "OpeningHoursSpecification", "dayOfWeek": "Sunday"},
	}
	if diff := cmp.Diff(want, got["openingHoursSpecification"]); diff != "" {
		t.Fatalf("opening hours mismatch (-want +got):\n%s", diff)
	}
	if got["priceRange"] != "$$" {
		t.Fatalf("priceRange must pass through")
	}
	if _, ok := got["image"]; ok {
		t.Fatalf("image must be absent when not supplied")
	}
}

func TestVideo_Passthrough(t *testing.T) {
	got := decode(t, testBuilder().Video(builder.VideoInput{
		Name:         "Demo",
		Description:  "Before and after",
		ThumbnailURL: "https://www.purrify.ca/thumb.jpg",
		UploadDate:   "2025-01-20",
		Duration:     "not-a-duration",
	}))
	if got["@type"] != "VideoObject" || got["duration"] != "not-a-duration" {
		t.Fatalf("unexpected video: %v", got)
	}
	if _, ok := got["embedUrl"]; ok {
		t.Fatalf("embedUrl must be absent when not supplied")
	}
}

func TestHowTo_StepsNumberedByInputOrder(t *testing.T) {
	got := decode(t, testBuilder().HowTo(builder.HowToInput{
		Name:        "Use Purrify",
		Description: "Three steps",
		Steps: []builder.HowToStep{
			{Name: "Sprinkle", Text: "Sprinkle on litter"},
			{Name: "Apply", Text: "Mix lightly", Image: "https://www.purrify.ca/mix.jpg"},
			{Name: "Breathe", Text: "Enjoy"},
		},
		TotalTime: "PT1M",
	}))
	steps := got["step"].([]any)
	wantNames := []string{"Sprinkle", "Apply", "Breathe"}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i, raw := range steps {
		s := raw.(map[string]any)
		if s["position"] != float64(i+1) || s["name"] != wantNames[i] || s["@type"] != "HowToStep" {
			t.Fatalf("step %d mismatch: %v", i, s)
		}
	}
	if got["totalTime"] != "PT1M" {
		t.Fatalf("totalTime must pass through")
	}
}

func TestBuilder_ConfigIsCopied(t *testing.T) {
	cfg := ldschema.DefaultConfig()
	b := builder.New(cfg)
	cfg.OrganizationName = "Mutated"
	if b.Config().OrganizationName != "Purrify" {
		t.Fatalf("builder must not observe caller mutations")
	}
}

func TestBuilder_ConcurrentCallsAreDeterministic(t *testing.T) {
	b := testBuilder()
	in := builder.ProductInput{Name: "Purrify", Images: []string{"https://www.purrify.ca/p.jpg"}, Price: 1}
	want := b.Product(in)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := b.Product(in); got != want {
				t.Errorf("non-deterministic output")
			}
		}()
	}
	wg.Wait()
}

func intPtr(n int) *int { return &n }
