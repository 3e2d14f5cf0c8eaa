package usecase

import (
	"strings"

	"github.com/aqualens/backend/internal/domain"
)

// ClassifyBrand maps a product title to a canonical brand label, or Other.
//
// Three ordered passes over the normalized title, first match wins:
// Arabic aliases, then per-brand search terms, then bare brand names. The
// alias pass runs first so short or overlapping transliterations resolve
// before the looser bare-name containment gets a chance to false-positive.
// No scoring, no longest-match: ordering alone breaks ties.
func ClassifyBrand(title string) string {
	normalized := Normalize(title)

	for _, alias := range domain.BrandAliases {
		if strings.Contains(normalized, Normalize(alias.Alias)) {
			return alias.Brand
		}
	}

	for _, bt := range domain.BrandSearchTerms {
		for _, term := range bt.Terms {
			if strings.Contains(normalized, Normalize(term)) {
				return bt.Brand
			}
		}
	}

	for _, brand := range domain.Brands {
		if strings.Contains(normalized, Normalize(brand)) {
			return brand
		}
	}

	return domain.BrandOther
}
