package usecase

import "github.com/aqualens/backend/internal/domain"

// CheckAvailability applies the per-size price-ceiling rule. A missing or
// unparseable price is Unknown; a size with no registered ceiling is
// Available by default; otherwise the listing is Not Available when its
// price exceeds the ceiling. The rule encodes one brand's pricing tier but
// is evaluated for every record, so per-brand availability percentages can
// be derived later.
func CheckAvailability(priceText, size string) domain.AvailabilityStatus {
	if priceText == domain.PriceNotFound {
		return domain.AvailabilityUnknown
	}

	price, ok := ParsePrice(priceText)
	if !ok {
		return domain.AvailabilityUnknown
	}

	if threshold, ok := domain.NPLPriceThresholds[size]; ok && price > threshold {
		return domain.NotAvailable
	}

	return domain.Available
}
