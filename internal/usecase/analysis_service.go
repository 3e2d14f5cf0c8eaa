package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aqualens/backend/internal/domain"
)

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	CacheTTL           time.Duration
	MaxProducts        int
	EnableDebugLogging bool
}

// AnalysisService runs the fetch-classify-aggregate pipeline for one scan.
// All classification state lives in a per-run RecordSet; nothing is shared
// across runs except the report cache.
type AnalysisService struct {
	source             domain.ListingSource
	cache              domain.ReportCache
	cacheTTL           time.Duration
	maxProducts        int
	enableDebugLogging bool
}

// NewAnalysisService creates a new analysis service with dependencies
func NewAnalysisService(
	source domain.ListingSource,
	cache domain.ReportCache,
	config AnalysisServiceConfig,
) *AnalysisService {
	maxProducts := config.MaxProducts
	if maxProducts <= 0 {
		maxProducts = 48
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}

	return &AnalysisService{
		source:             source,
		cache:              cache,
		cacheTTL:           cacheTTL,
		maxProducts:        maxProducts,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Scan runs one full classification run.
// Flow: check cache -> expand search terms -> fetch and classify each term's
// listings into a fresh record set -> apply brand filter -> aggregate ->
// cache -> return.
func (s *AnalysisService) Scan(ctx context.Context, request domain.ScanRequest) (*domain.AnalysisReport, error) {
	if strings.TrimSpace(request.Keyword) == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.reportCacheKey(request)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		cached.Source = "Cache"
		return cached, nil
	}

	maxProducts := request.MaxProducts
	if maxProducts <= 0 {
		maxProducts = s.maxProducts
	}

	searchTerms := buildSearchTerms(request.Keyword, request.BrandFilter)
	recordSet := NewRecordSet()

	for _, term := range searchTerms {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		listings, err := s.source.FetchListings(ctx, term)
		if err != nil {
			// One failing search term never aborts the run.
			log.Printf("[SCAN] Fetch failed for %q: %v", term, err)
			continue
		}

		if len(listings) > maxProducts {
			listings = listings[:maxProducts]
		}

		for _, listing := range listings {
			record := ClassifyListing(listing)
			if s.enableDebugLogging {
				log.Printf("[SCAN] %q -> brand=%q size=%q price=%.2f %s",
					listing.Title, record.Brand, record.Size, record.NumericPrice, record.Availability)
			}
			recordSet.Add(record)
		}
	}

	if recordSet.Len() == 0 {
		return nil, domain.ErrNoListings
	}

	records := recordSet.Records()
	if request.BrandFilter != "" {
		records = filterByBrand(records, request.BrandFilter)
	}

	report := s.buildReport(request, records)

	if err := s.cache.Set(ctx, cacheKey, report, s.cacheTTL); err != nil {
		log.Printf("[SCAN] Failed to cache report: %v", err)
	}

	return report, nil
}

// ClassifyListing turns one raw listing into a product record. Pure per
// listing; safe to parallelize as long as RecordSet.Add stays serialized.
func ClassifyListing(listing domain.Listing) domain.ProductRecord {
	size := ClassifySize(listing.Title)
	price, _ := ParsePrice(listing.PriceText)

	return domain.ProductRecord{
		Title:        listing.Title,
		PriceText:    listing.PriceText,
		Brand:        ClassifyBrand(listing.Title),
		Size:         size,
		NumericPrice: price,
		Availability: CheckAvailability(listing.PriceText, size),
	}
}

// buildSearchTerms expands a keyword into the query variants to fetch. A
// brand filter matching a known brand expands to one variant per registered
// search term; an unknown filter is appended to the keyword as-is.
func buildSearchTerms(keyword, brandFilter string) []string {
	if brandFilter == "" {
		return []string{keyword}
	}

	normalizedFilter := Normalize(brandFilter)
	for _, bt := range domain.BrandSearchTerms {
		if !strings.Contains(Normalize(bt.Brand), normalizedFilter) {
			continue
		}
		terms := make([]string, 0, len(bt.Terms))
		for _, term := range bt.Terms {
			terms = append(terms, keyword+" "+term)
		}
		return terms
	}

	return []string{keyword + " " + brandFilter}
}

// filterByBrand keeps the records matching a brand filter. A filter that
// resolves to a canonical brand matches on label equality; otherwise a
// normalized substring test runs over both the brand label and the title.
func filterByBrand(records []domain.ProductRecord, brandFilter string) []domain.ProductRecord {
	normalizedFilter := Normalize(brandFilter)

	var canonical string
	for _, brand := range domain.Brands {
		if strings.Contains(Normalize(brand), normalizedFilter) {
			canonical = brand
			break
		}
	}

	var kept []domain.ProductRecord
	for _, r := range records {
		if canonical != "" {
			if r.Brand == canonical {
				kept = append(kept, r)
			}
			continue
		}
		if strings.Contains(Normalize(r.Brand), normalizedFilter) ||
			strings.Contains(Normalize(r.Title), normalizedFilter) {
			kept = append(kept, r)
		}
	}
	return kept
}

func (s *AnalysisService) buildReport(request domain.ScanRequest, records []domain.ProductRecord) *domain.AnalysisReport {
	return &domain.AnalysisReport{
		RunID:              uuid.NewString(),
		Keyword:            request.Keyword,
		BrandFilter:        request.BrandFilter,
		GeneratedAt:        time.Now(),
		Records:            records,
		PriceTable:         BuildPriceTable(records),
		BestOffers:         FindBestOffers(records),
		Stats:              ComputePriceStats(records),
		NPLAvailability:    AvailabilityPercentage(records, domain.BrandNPL),
		BarakaAvailability: AvailabilityPercentage(records, domain.BrandBaraka),
		Source:             "Live",
	}
}

// reportCacheKey builds a normalized cache key for a scan request.
// Format: "report:{normalized_keyword}:{normalized_brand_filter}"
func (s *AnalysisService) reportCacheKey(request domain.ScanRequest) string {
	return fmt.Sprintf("report:%s:%s", Normalize(request.Keyword), Normalize(request.BrandFilter))
}
