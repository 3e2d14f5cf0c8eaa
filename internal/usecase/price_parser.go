package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aqualens/backend/internal/domain"
)

// priceGroupRegex matches the first digit group in a raw price string,
// allowing "." and "," separators (e.g. "1,250.50 EGP").
var priceGroupRegex = regexp.MustCompile(`[\d,.]+`)

// ParsePrice extracts a numeric price from raw price text. Commas are
// treated purely as thousands separators. Only the first digit group is
// used, so trailing unit counts ("45.00 x 6") never leak into the price.
// Returns (0, false) for the missing-price sentinel, text without digits,
// or a malformed numeral.
func ParsePrice(raw string) (float64, bool) {
	if raw == domain.PriceNotFound {
		return 0, false
	}

	match := priceGroupRegex.FindString(raw)
	if match == "" {
		return 0, false
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil || price < 0 {
		return 0, false
	}

	return price, true
}
