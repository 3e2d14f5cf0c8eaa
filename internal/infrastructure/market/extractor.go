package market

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/aqualens/backend/internal/domain"
)

// Listing extraction from marketplace search result markup. Each product
// card is a div with data-component-type="s-search-result"; the title and
// price live in spans whose classes shift between page layouts, so each
// field tries a chain of selectors and falls back to a sentinel when all of
// them miss. Extraction never fails a whole page over one bad card.

var titleClassFallbacks = []string{
	"a-size-base-plus a-color-base a-text-normal",
	"a-size-medium a-color-base a-text-normal",
	"a-size-base a-color-base",
}

// ExtractListings parses a search results page and returns the raw
// (title, price) pair for every product card found.
func ExtractListings(body []byte) ([]domain.Listing, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var listings []domain.Listing
	for _, card := range findAll(doc, isProductCard) {
		listings = append(listings, domain.Listing{
			Title:     extractTitle(card),
			PriceText: extractPrice(card),
		})
	}

	return listings, nil
}

func extractTitle(card *html.Node) string {
	// The h2 usually wraps the title; span classes are the fallback chain.
	if h2 := findFirst(card, isElement("h2")); h2 != nil {
		if text := textContent(h2); text != "" {
			return text
		}
	}
	for _, class := range titleClassFallbacks {
		if span := findFirst(card, isSpanWithClass(class)); span != nil {
			if text := textContent(span); text != "" {
				return text
			}
		}
	}
	return domain.TitleNotFound
}

func extractPrice(card *html.Node) string {
	if span := findFirst(card, isSpanWithClass("a-offscreen")); span != nil {
		if text := textContent(span); text != "" {
			return text
		}
	}
	if span := findFirst(card, isSpanWithClass("a-price-whole")); span != nil {
		if text := textContent(span); text != "" {
			return text
		}
	}
	return domain.PriceNotFound
}

func isProductCard(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "div" &&
		attrValue(n, "data-component-type") == "s-search-result"
}

func isElement(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == name
	}
}

func isSpanWithClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "span" &&
			attrValue(n, "class") == class
	}
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		if found != nil {
			return
		}
		if match(n) {
			found = n
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walker(child)
		}
	}
	walker(root)
	return found
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		if match(n) {
			found = append(found, n)
			// Cards do not nest; no need to descend into a match.
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walker(child)
		}
	}
	walker(root)
	return found
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walker(child)
		}
	}
	walker(n)
	return strings.TrimSpace(b.String())
}
