package domain

import (
	"math"
	"strconv"
	"time"
)

// PivotCell is a pivot-table cell that is either a minimum price or blank.
type PivotCell struct {
	Price float64 `json:"price"`
	Valid bool    `json:"valid"`
}

// Display renders a cell for tables and CSV: whole-number price, or an
// empty string for a blank cell. The underlying Price stays unrounded.
func (c PivotCell) Display() string {
	if !c.Valid {
		return ""
	}
	return strconv.Itoa(int(math.Round(c.Price)))
}

// PriceTable is the size×brand minimum-price pivot. Sizes lists only the
// sizes present in the data, in canonical order; Brands is always the full
// brand vocabulary, so absent brands render as empty columns.
type PriceTable struct {
	Sizes  []string                        `json:"sizes"`
	Brands []string                        `json:"brands"`
	Cells  map[string]map[string]PivotCell `json:"cells"`
}

// BestOffer is the lowest-priced valid record for one size.
type BestOffer struct {
	Size  string  `json:"size"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}

// PriceStats summarizes all records with a positive parsed price. When no
// such record exists Valid is false and Message carries the reason.
type PriceStats struct {
	Valid   bool    `json:"valid"`
	Message string  `json:"message,omitempty"`
	Average float64 `json:"average"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
	Count   int     `json:"count"`
}

// AnalysisReport is the complete output of one scan run: the frozen record
// set plus the four aggregates, ready for the dashboard and CSV export.
type AnalysisReport struct {
	RunID              string          `json:"runId"`
	Keyword            string          `json:"keyword"`
	BrandFilter        string          `json:"brandFilter,omitempty"`
	GeneratedAt        time.Time       `json:"generatedAt"`
	Records            []ProductRecord `json:"records"`
	PriceTable         PriceTable      `json:"priceTable"`
	BestOffers         []BestOffer     `json:"bestOffers"`
	Stats              PriceStats      `json:"stats"`
	NPLAvailability    float64         `json:"nplAvailability"`
	BarakaAvailability float64         `json:"barakaAvailability"`
	Source             string          `json:"source"` // "Live" or "Cache"
}
