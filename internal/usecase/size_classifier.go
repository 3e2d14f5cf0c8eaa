package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aqualens/backend/internal/domain"
)

// sizeRule binds one detection pattern to either a literal label or an
// extractor that computes the label from the captured groups. Exactly one
// of label/extract is set.
type sizeRule struct {
	pattern *regexp.Regexp
	label   string
	extract func(groups []string) string
}

// sizeRules is evaluated strictly in order, first match wins. Known sizes
// and their metric variants come first so that a literal "1.5l" token is
// never swallowed by the generic numeral+unit extractors at the end;
// reordering this table silently changes classification for many titles.
var sizeRules = []sizeRule{
	// Standard sizes and their metric variants
	{pattern: regexp.MustCompile(`(?:^|\s)0\.33\s*l(?:iter)?(?:\s|$)`), label: "0.33L"},
	{pattern: regexp.MustCompile(`(?:^|\s)330\s*ml(?:\s|$)`), label: "0.33L"},
	{pattern: regexp.MustCompile(`(?:^|\s)0\.6\s*l(?:iter)?(?:\s|$)`), label: "0.6L"},
	{pattern: regexp.MustCompile(`(?:^|\s)600\s*ml(?:\s|$)`), label: "0.6L"},
	{pattern: regexp.MustCompile(`(?:^|\s)1\s*l(?:iter)?(?:\s|$)`), label: "1L"},
	{pattern: regexp.MustCompile(`(?:^|\s)1000\s*ml(?:\s|$)`), label: "1L"},
	{pattern: regexp.MustCompile(`(?:^|\s)1\.5\s*l(?:iter)?(?:\s|$)`), label: "1.5L"},
	{pattern: regexp.MustCompile(`(?:^|\s)1500\s*ml(?:\s|$)`), label: "1.5L"},
	{pattern: regexp.MustCompile(`(?:^|\s)6\s*l(?:iter)?(?:\s|$)`), label: "6L"},
	{pattern: regexp.MustCompile(`(?:^|\s)6000\s*ml(?:\s|$)`), label: "6L"},
	{pattern: regexp.MustCompile(`(?:^|\s)0\.24\s*l(?:iter)?(?:\s|sparkling)`), label: "0.24L Sparkling"},
	{pattern: regexp.MustCompile(`(?:^|\s)240\s*ml(?:\s|sparkling)`), label: "0.24L Sparkling"},
	{pattern: regexp.MustCompile(`(?:^|\s)5\s*gallon(?:s)?(?:\s|$)`), label: "5 Gallons"},

	// Hyphenated phrasings
	{pattern: regexp.MustCompile(`(?:^|\s)1\s*-\s*liter(?:\s|$)`), label: "1L"},
	{pattern: regexp.MustCompile(`(?:^|\s)1\.5\s*-\s*liter(?:\s|$)`), label: "1.5L"},
	{pattern: regexp.MustCompile(`(?:^|\s)6\s*-\s*liter(?:\s|$)`), label: "6L"},

	// Comma decimal separators
	{pattern: regexp.MustCompile(`(?:^|\s)0[,.]33\s*l(?:iter)?(?:\s|$)`), label: "0.33L"},
	{pattern: regexp.MustCompile(`(?:^|\s)0[,.]6\s*l(?:iter)?(?:\s|$)`), label: "0.6L"},
	{pattern: regexp.MustCompile(`(?:^|\s)1[,.]5\s*l(?:iter)?(?:\s|$)`), label: "1.5L"},

	// Latin numerals with Arabic units
	{pattern: regexp.MustCompile(`(?:^|\s)0\.33\s*لتر(?:\s|$)`), label: "0.33L"},
	{pattern: regexp.MustCompile(`(?:^|\s)0\.6\s*لتر(?:\s|$)`), label: "0.6L"},
	{pattern: regexp.MustCompile(`(?:^|\s)1\s*لتر(?:\s|$)`), label: "1L"},
	{pattern: regexp.MustCompile(`(?:^|\s)1\.5\s*لتر(?:\s|$)`), label: "1.5L"},
	{pattern: regexp.MustCompile(`(?:^|\s)6\s*لتر(?:\s|$)`), label: "6L"},
	{pattern: regexp.MustCompile(`(?:^|\s)5\s*جالون(?:\s|$)`), label: "5 Gallons"},

	// Multipacks that pin down the bottle size
	{pattern: regexp.MustCompile(`(?:^|\s)pack\s*of\s*6\s*[xX]\s*1\.5\s*l(?:iter)?(?:\s|$)`), label: "1.5L"},
	{pattern: regexp.MustCompile(`(?:^|\s)pack\s*of\s*12\s*[xX]\s*0\.33\s*l(?:iter)?(?:\s|$)`), label: "0.33L"},
	{pattern: regexp.MustCompile(`(?:^|\s)pack\s*of\s*6\s*[xX]\s*1\s*l(?:iter)?(?:\s|$)`), label: "1L"},

	// Generic numeral+unit extractors, last
	{pattern: regexp.MustCompile(`(?:^|\s)(\d+(?:\.\d+)?)\s*l(?:iter)?(?:\s|$)`), extract: literValue},
	{pattern: regexp.MustCompile(`(?:^|\s)(\d+)\s*ml(?:\s|$)`), extract: milliliterValue},
	{pattern: regexp.MustCompile(`(?:^|\s)(\d+)\s*gallon(?:s)?(?:\s|$)`), extract: gallonValue},
}

func literValue(groups []string) string {
	return groups[1] + "L"
}

func milliliterValue(groups []string) string {
	ml, err := strconv.ParseFloat(groups[1], 64)
	if err != nil {
		return domain.SizeUnknown
	}
	// Render milliliters as liters, dropping a trailing .00 ("1000" -> "1L").
	return strings.Replace(fmt.Sprintf("%.2fL", ml/1000), ".00", "", 1)
}

func gallonValue(groups []string) string {
	return groups[1] + " Gallons"
}

// ClassifySize maps a product title to a standardized size label, or
// Unknown Size. Arabic alias phrases are checked first, then the ordered
// pattern table, then a sparkling-water fallback in either language.
func ClassifySize(title string) string {
	normalized := Normalize(title)

	for _, alias := range domain.SizeAliases {
		if strings.Contains(normalized, Normalize(alias.Alias)) {
			return alias.Size
		}
	}

	for _, rule := range sizeRules {
		groups := rule.pattern.FindStringSubmatch(normalized)
		if groups == nil {
			continue
		}
		if rule.extract != nil {
			return rule.extract(groups)
		}
		return rule.label
	}

	if strings.Contains(normalized, "sparkling") || strings.Contains(normalized, "فوار") {
		return domain.SizeSparkling
	}

	return domain.SizeUnknown
}
