package domain

import (
	"context"
	"time"
)

// ListingSource fetches the raw listings for one search term. Implemented by
// the marketplace client; the core pipeline never talks HTTP itself.
type ListingSource interface {
	FetchListings(ctx context.Context, searchTerm string) ([]Listing, error)
}

// ReportCache caches completed analysis reports by run key.
type ReportCache interface {
	Get(ctx context.Context, key string) (*AnalysisReport, error)
	Set(ctx context.Context, key string, report *AnalysisReport, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
