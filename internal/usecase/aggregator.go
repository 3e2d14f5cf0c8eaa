package usecase

import (
	"math"

	"github.com/aqualens/backend/internal/domain"
)

// Aggregates over a frozen record set. Every function degrades to an
// explicit empty shape on empty or all-invalid input rather than failing.
// The pivot and best offers exclude Other/Unknown Size records; the global
// price statistics count every record with a positive parsed price.

// BuildPriceTable computes the size×brand minimum-price pivot. Rows follow
// the canonical size order and only cover sizes present in the data;
// columns are always the full brand vocabulary. Cells hold unrounded
// minimums - rounding happens at display time via PivotCell.Display.
func BuildPriceTable(records []domain.ProductRecord) domain.PriceTable {
	table := domain.PriceTable{
		Brands: append([]string(nil), domain.Brands...),
		Cells:  make(map[string]map[string]domain.PivotCell),
	}

	mins := make(map[string]map[string]float64)
	for _, r := range records {
		if r.Brand == domain.BrandOther || r.Size == domain.SizeUnknown {
			continue
		}
		row, ok := mins[r.Size]
		if !ok {
			row = make(map[string]float64)
			mins[r.Size] = row
		}
		if cur, ok := row[r.Brand]; !ok || r.NumericPrice < cur {
			row[r.Brand] = r.NumericPrice
		}
	}

	for _, size := range domain.StandardSizes {
		row, ok := mins[size]
		if !ok {
			continue
		}
		cells := make(map[string]domain.PivotCell)
		for _, brand := range table.Brands {
			if price, ok := row[brand]; ok {
				cells[brand] = domain.PivotCell{Price: price, Valid: true}
			} else {
				cells[brand] = domain.PivotCell{}
			}
		}
		table.Sizes = append(table.Sizes, size)
		table.Cells[size] = cells
	}

	return table
}

// FindBestOffers returns, for each size with at least one valid-brand,
// valid-size, positively priced record, the single cheapest record as
// (size, brand, price). Sizes follow the canonical order; sizes outside the
// standard vocabulary (from the generic extractors) come after, in
// first-seen order.
func FindBestOffers(records []domain.ProductRecord) []domain.BestOffer {
	best := make(map[string]domain.BestOffer)
	var extraSizes []string

	standard := make(map[string]bool, len(domain.StandardSizes))
	for _, size := range domain.StandardSizes {
		standard[size] = true
	}

	for _, r := range records {
		if r.Brand == domain.BrandOther || r.Size == domain.SizeUnknown || r.NumericPrice <= 0 {
			continue
		}
		cur, seen := best[r.Size]
		if !seen {
			if !standard[r.Size] {
				extraSizes = append(extraSizes, r.Size)
			}
			best[r.Size] = domain.BestOffer{Size: r.Size, Brand: r.Brand, Price: r.NumericPrice}
			continue
		}
		if r.NumericPrice < cur.Price {
			best[r.Size] = domain.BestOffer{Size: r.Size, Brand: r.Brand, Price: r.NumericPrice}
		}
	}

	offers := make([]domain.BestOffer, 0, len(best))
	for _, size := range domain.StandardSizes {
		if offer, ok := best[size]; ok {
			offers = append(offers, offer)
		}
	}
	for _, size := range extraSizes {
		offers = append(offers, best[size])
	}
	return offers
}

// AvailabilityPercentage returns the share of a brand's records that are
// Available, rounded to two decimals. A brand with no records (including
// the empty set) is exactly 0 - never a division by zero.
func AvailabilityPercentage(records []domain.ProductRecord, brand string) float64 {
	total := 0
	available := 0
	for _, r := range records {
		if r.Brand != brand {
			continue
		}
		total++
		if r.Availability == domain.Available {
			available++
		}
	}
	if total == 0 {
		return 0
	}
	pct := float64(available) / float64(total) * 100
	return math.Round(pct*100) / 100
}

// ComputePriceStats returns average/min/max/count over all records with a
// positive parsed price, regardless of brand or size. With no valid prices
// the stats collapse to a single message instead of numeric fields.
func ComputePriceStats(records []domain.ProductRecord) domain.PriceStats {
	var sum, min, max float64
	count := 0

	for _, r := range records {
		if r.NumericPrice <= 0 {
			continue
		}
		if count == 0 || r.NumericPrice < min {
			min = r.NumericPrice
		}
		if count == 0 || r.NumericPrice > max {
			max = r.NumericPrice
		}
		sum += r.NumericPrice
		count++
	}

	if count == 0 {
		return domain.PriceStats{Message: "No valid prices found for analysis"}
	}

	return domain.PriceStats{
		Valid:   true,
		Average: sum / float64(count),
		Minimum: min,
		Maximum: max,
		Count:   count,
	}
}
