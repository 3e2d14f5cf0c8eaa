package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aqualens/backend/internal/domain"
)

// CSV rendering of report artifacts. The render functions return raw CSV
// bytes for HTTP downloads; Writer additionally persists timestamped
// snapshots under an export directory. No classification logic lives here.

// ProductsCSV renders the record set, one row per product.
func ProductsCSV(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Product Title", "Price", "Brand", "Size", "Numeric Price", "Availability Status"}); err != nil {
		return nil, err
	}

	for _, r := range report.Records {
		row := []string{
			r.Title,
			r.PriceText,
			r.Brand,
			r.Size,
			fmt.Sprintf("%g", r.NumericPrice),
			string(r.Availability),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// PriceTableCSV renders the size×brand pivot. Blank cells stay blank.
func PriceTableCSV(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	table := report.PriceTable
	header := append([]string{"Size"}, table.Brands...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, size := range table.Sizes {
		row := make([]string, 0, len(table.Brands)+1)
		row = append(row, size)
		for _, brand := range table.Brands {
			row = append(row, table.Cells[size][brand].Display())
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// StatsCSV renders the price statistics and availability percentages as
// (Statistic, Value) rows.
func StatsCSV(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Statistic", "Value"}); err != nil {
		return nil, err
	}

	var rows [][]string
	if report.Stats.Valid {
		rows = [][]string{
			{"Average Price", fmt.Sprintf("%.2f EGP", report.Stats.Average)},
			{"Minimum Price", fmt.Sprintf("%.2f EGP", report.Stats.Minimum)},
			{"Maximum Price", fmt.Sprintf("%.2f EGP", report.Stats.Maximum)},
			{"Number of Products", fmt.Sprintf("%d", report.Stats.Count)},
			{"NPL Availability", fmt.Sprintf("%v%%", report.NPLAvailability)},
			{"Baraka Availability", fmt.Sprintf("%v%%", report.BarakaAvailability)},
		}
	} else {
		rows = [][]string{{"Message", report.Stats.Message}}
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// Writer persists report snapshots as CSV files in a directory.
type Writer struct {
	dir string
}

// NewWriter creates a CSV writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteSnapshot writes the products and price-table CSVs for a report,
// stamped with the report's generation time. Returns the written paths.
func (w *Writer) WriteSnapshot(report *domain.AnalysisReport) ([]string, error) {
	stamp := report.GeneratedAt.Format("20060102_150405")

	files := []struct {
		name   string
		render func(*domain.AnalysisReport) ([]byte, error)
	}{
		{fmt.Sprintf("products_%s.csv", stamp), ProductsCSV},
		{fmt.Sprintf("price_table_%s.csv", stamp), PriceTableCSV},
		{fmt.Sprintf("price_analysis_%s.csv", stamp), StatsCSV},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		data, err := f.render(report)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(w.dir, f.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
