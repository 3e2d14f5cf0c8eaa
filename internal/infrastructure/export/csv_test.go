package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualens/backend/internal/domain"
)

func sampleReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		Keyword:     "water",
		GeneratedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Records: []domain.ProductRecord{
			{
				Title:        "Baraka Water 1.5L",
				PriceText:    "EGP 95.50",
				Brand:        domain.BrandBaraka,
				Size:         "1.5L",
				NumericPrice: 95.5,
				Availability: domain.Available,
			},
			{
				Title:        "Nestle Pure Life 600ml",
				PriceText:    "Price not found",
				Brand:        domain.BrandNPL,
				Size:         "0.60L",
				NumericPrice: 0,
				Availability: domain.AvailabilityUnknown,
			},
		},
		PriceTable: domain.PriceTable{
			Sizes:  []string{"0.60L", "1.5L"},
			Brands: []string{domain.BrandNPL, domain.BrandBaraka},
			Cells: map[string]map[string]domain.PivotCell{
				"0.60L": {
					domain.BrandNPL: {Price: 0, Valid: true},
				},
				"1.5L": {
					domain.BrandBaraka: {Price: 95.5, Valid: true},
				},
			},
		},
		Stats: domain.PriceStats{
			Valid:   true,
			Average: 95.5,
			Minimum: 95.5,
			Maximum: 95.5,
			Count:   1,
		},
		NPLAvailability:    0,
		BarakaAvailability: 100,
	}
}

func TestProductsCSV(t *testing.T) {
	data, err := ProductsCSV(sampleReport())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Product Title,Price,Brand,Size,Numeric Price,Availability Status", lines[0])
	assert.Equal(t, "Baraka Water 1.5L,EGP 95.50,Baraka,1.5L,95.5,Available", lines[1])
	assert.Equal(t, "Nestle Pure Life 600ml,Price not found,Nestlé Pure Life,0.60L,0,Unknown", lines[2])
}

func TestPriceTableCSV(t *testing.T) {
	data, err := PriceTableCSV(sampleReport())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Size,Nestlé Pure Life,Baraka", lines[0])
	// Zero-priced cells render as 0; missing cells stay blank.
	assert.Equal(t, "0.60L,0,", lines[1])
	assert.Equal(t, "1.5L,,96", lines[2])
}

func TestStatsCSV(t *testing.T) {
	data, err := StatsCSV(sampleReport())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Statistic,Value", lines[0])
	assert.Equal(t, "Average Price,95.50 EGP", lines[1])
	assert.Equal(t, "Minimum Price,95.50 EGP", lines[2])
	assert.Equal(t, "Maximum Price,95.50 EGP", lines[3])
	assert.Equal(t, "Number of Products,1", lines[4])
	assert.Equal(t, "NPL Availability,0%", lines[5])
	assert.Equal(t, "Baraka Availability,100%", lines[6])
}

func TestStatsCSV_NoValidPrices(t *testing.T) {
	report := sampleReport()
	report.Stats = domain.PriceStats{Valid: false, Message: "No valid prices found for analysis"}

	data, err := StatsCSV(report)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Message,No valid prices found for analysis", lines[1])
}

func TestWriteSnapshot(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(filepath.Join(dir, "exports"))
	require.NoError(t, err)

	paths, err := writer.WriteSnapshot(sampleReport())

	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Contains(t, paths[0], "products_20250314_093000.csv")
	assert.Contains(t, paths[1], "price_table_20250314_093000.csv")
	assert.Contains(t, paths[2], "price_analysis_20250314_093000.csv")

	for _, path := range paths {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestNewWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	_, err := NewWriter(dir)

	require.NoError(t, err)
	info, statErr := os.Stat(dir)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
