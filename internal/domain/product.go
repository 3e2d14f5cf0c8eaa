package domain

// Sentinel values emitted by the extractor when a field is missing upstream.
// They flow through the pipeline as regular strings and classify to the
// "unknown" outcomes rather than raising.
const (
	TitleNotFound = "Title not found"
	PriceNotFound = "Price not found"
)

// AvailabilityStatus is the verdict of the per-size price-ceiling rule.
type AvailabilityStatus string

const (
	Available           AvailabilityStatus = "Available"
	NotAvailable        AvailabilityStatus = "Not Available"
	AvailabilityUnknown AvailabilityStatus = "Unknown"
)

// Listing is a raw (title, price) pair pulled from a marketplace search page.
// Both fields are untrusted free text in any language and formatting.
type Listing struct {
	Title     string `json:"title"`
	PriceText string `json:"priceText"`
}

// ProductRecord is one classified, deduplicated listing. Title and PriceText
// keep their original form; NumericPrice is 0 exactly when PriceText was
// unparseable, in which case Availability is always Unknown.
type ProductRecord struct {
	Title        string             `json:"title"`
	PriceText    string             `json:"priceText"`
	Brand        string             `json:"brand"`
	Size         string             `json:"size"`
	NumericPrice float64            `json:"numericPrice"`
	Availability AvailabilityStatus `json:"availability"`
}

// ScanRequest describes one classification run: a search keyword, an
// optional brand filter, and a cap on listings per query variant.
type ScanRequest struct {
	Keyword     string `json:"keyword" binding:"required"`
	BrandFilter string `json:"brandFilter,omitempty"`
	MaxProducts int    `json:"maxProducts,omitempty"`
}
