package builder

// ProductInput describes a product page.
type ProductInput struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Images      []string      `yaml:"images"`
	Price       float64       `yaml:"price"`
	Currency    string        `yaml:"currency"` // Config.Currency when empty.
	InStock     bool          `yaml:"inStock"`
	URL         string        `yaml:"url"`
	SKU         string        `yaml:"sku"`
	Brand       string        `yaml:"brand"` // Config.OrganizationName when empty.
	Rating      *RatingInput  `yaml:"rating"`
	Reviews     []ReviewInput `yaml:"reviews"`
}

// RatingInput is an aggregate rating: Value in [0,5], Count >= 0.
type RatingInput struct {
	Value float64 `yaml:"value"`
	Count int     `yaml:"count"`
}

// ReviewInput is a single customer review.
type ReviewInput struct {
	Author        string  `yaml:"author"`
	Rating        float64 `yaml:"rating"`
	Body          string  `yaml:"body"`
	DatePublished string  `yaml:"datePublished"`
}

// BlogPostInput describes a blog post or article.
type BlogPostInput struct {
	Title         string      `yaml:"title"`
	Excerpt       string      `yaml:"excerpt"`
	FeaturedImage string      `yaml:"featuredImage"`
	PublishDate   string      `yaml:"publishDate"`
	ModifiedDate  string      `yaml:"modifiedDate"` // PublishDate when empty.
	Author        AuthorInput `yaml:"author"`
	URL           string      `yaml:"url"`
	Categories    []string    `yaml:"categories"`
	// Tags are accepted for callers that share the record with page
	// rendering; they are not emitted.
	Tags []string `yaml:"tags"`
	// WordCount is emitted whenever set, including an explicit 0.
	WordCount *int `yaml:"wordCount"`
}

// AuthorInput identifies the author of a post.
type AuthorInput struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// AddressInput is a postal address.
type AddressInput struct {
	StreetAddress string `yaml:"streetAddress"`
	Locality      string `yaml:"locality"`
	Region        string `yaml:"region"`
	PostalCode    string `yaml:"postalCode"`
	Country       string `yaml:"country"`
}

// OrganizationInput describes the publishing organization.
type OrganizationInput struct {
	Name           string        `yaml:"name"`
	URL            string        `yaml:"url"`
	Logo           string        `yaml:"logo"`
	Description    string        `yaml:"description"`
	Email          string        `yaml:"email"`
	Phone          string        `yaml:"phone"`
	Address        *AddressInput `yaml:"address"`
	SocialProfiles []string      `yaml:"socialProfiles"`
	FoundingDate   string        `yaml:"foundingDate"`
}

// BreadcrumbItem is one step of a breadcrumb trail. Trail order defines position.
type BreadcrumbItem struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// FAQItem is a question with its answer.
type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// WebSiteInput describes the site itself.
type WebSiteInput struct {
	Name      string `yaml:"name"`
	URL       string `yaml:"url"`
	SearchURL string `yaml:"searchUrl"`
}

// LocalBusinessInput describes a physical business location.
type LocalBusinessInput struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	URL         string       `yaml:"url"`
	Telephone   string       `yaml:"telephone"`
	Email       string       `yaml:"email"`
	Address     AddressInput `yaml:"address"`
	Image       string       `yaml:"image"`
	// OpeningHours entries read "Day HH:MM HH:MM", e.g. "Monday 09:00 17:00".
	OpeningHours []string `yaml:"openingHours"`
	PriceRange   string   `yaml:"priceRange"`
}

// VideoInput describes a video. Duration is an ISO-8601 duration such as "PT2M30S".
type VideoInput struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	ThumbnailURL string `yaml:"thumbnailUrl"`
	UploadDate   string `yaml:"uploadDate"`
	Duration     string `yaml:"duration"`
	ContentURL   string `yaml:"contentUrl"`
	EmbedURL     string `yaml:"embedUrl"`
}

// HowToInput describes step-by-step instructions.
type HowToInput struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Steps       []HowToStep `yaml:"steps"`
	Image       string      `yaml:"image"`
	TotalTime   string      `yaml:"totalTime"`
}

// HowToStep is one instruction; its position follows slice order.
type HowToStep struct {
	Name  string `yaml:"name"`
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
	URL   string `yaml:"url"`
}
