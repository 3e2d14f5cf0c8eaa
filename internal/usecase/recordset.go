package usecase

import "github.com/aqualens/backend/internal/domain"

// RecordSet accumulates classified records for one run, deduplicated on
// normalized title. It is caller-owned: each run builds a fresh set, the
// set is mutated only during ingestion, and aggregation reads it frozen.
// Insertion order is preserved; lookups are a linear scan, which is fine
// for the per-query record counts this pipeline sees.
type RecordSet struct {
	records []domain.ProductRecord
	keys    []string // normalized titles, parallel to records
}

// NewRecordSet returns an empty record set for a new run.
func NewRecordSet() *RecordSet {
	return &RecordSet{}
}

// Add inserts a candidate record, or merges it into the existing record
// with the same normalized title. On merge only the price fields move, and
// only when the candidate's price is positive and strictly lower: brand,
// size and availability stay with the first-seen occurrence.
func (rs *RecordSet) Add(candidate domain.ProductRecord) {
	key := Normalize(candidate.Title)
	for i, existing := range rs.keys {
		if existing != key {
			continue
		}
		if candidate.NumericPrice > 0 && candidate.NumericPrice < rs.records[i].NumericPrice {
			rs.records[i].PriceText = candidate.PriceText
			rs.records[i].NumericPrice = candidate.NumericPrice
		}
		return
	}

	rs.records = append(rs.records, candidate)
	rs.keys = append(rs.keys, key)
}

// Len returns the number of distinct records.
func (rs *RecordSet) Len() int {
	return len(rs.records)
}

// Records returns the accumulated records in insertion order. The returned
// slice is a copy; the set itself stays untouched.
func (rs *RecordSet) Records() []domain.ProductRecord {
	out := make([]domain.ProductRecord, len(rs.records))
	copy(out, rs.records)
	return out
}
