package domain

// Brand and size vocabularies for the bottled-water category, plus the
// alias and search-term tables the classifiers match against. The alias and
// term tables are ordered slices, not maps: the classifiers take the first
// matching entry, so iteration order decides ties.

// BrandOther and SizeUnknown are the out-of-vocabulary outcomes. They are
// valid steady-state labels, kept in the record set and excluded only from
// the pivot and best-offer aggregates.
const (
	BrandOther  = "Other"
	SizeUnknown = "Unknown Size"
)

// SizeSparkling is the label the sparkling-water fallback resolves to.
const SizeSparkling = "0.24L Sparkling"

// Brands is the canonical brand vocabulary. It is also the column order of
// the price pivot.
var Brands = []string{
	"Elano", "Nestlé Pure Life", "Baraka", "Puvana", "Aquafina",
	"ISIS", "Hayat", "Safi", "Aqua Delta", "evian",
	"Dasani", "FLO",
}

// BrandNPL and BrandBaraka are the two brands the dashboard reports
// availability percentages for.
const (
	BrandNPL    = "Nestlé Pure Life"
	BrandBaraka = "Baraka"
)

// BrandAlias maps one Arabic spelling to its canonical brand.
type BrandAlias struct {
	Alias string
	Brand string
}

// BrandAliases is checked before the search-term and bare-name passes so
// that short transliterations resolve to the right brand first.
var BrandAliases = []BrandAlias{
	{"نستله بيور لايف", "Nestlé Pure Life"},
	{"بيور لايف", "Nestlé Pure Life"},
	{"نستله", "Nestlé Pure Life"},
	{"بركة", "Baraka"},
	{"باراكا", "Baraka"},
	{"إيلانو", "Elano"},
	{"ايلانو", "Elano"},
	{"بوفانا", "Puvana"},
	{"أكوافينا", "Aquafina"},
	{"اكوافينا", "Aquafina"},
	{"ايزيس", "ISIS"},
	{"إيزيس", "ISIS"},
	{"حياة", "Hayat"},
	{"صافي", "Safi"},
	{"اكوا دلتا", "Aqua Delta"},
	{"أكوا دلتا", "Aqua Delta"},
	{"إيفيان", "evian"},
	{"ايفيان", "evian"},
	{"داساني", "Dasani"},
	{"فلو", "FLO"},
}

// BrandTerms lists the registered search spellings for one brand. The same
// terms drive both title classification and search-query expansion when a
// brand filter is given.
type BrandTerms struct {
	Brand string
	Terms []string
}

var BrandSearchTerms = []BrandTerms{
	{"Nestlé Pure Life", []string{"nestle pure life", "nestle", "نستله بيور لايف", "نستله", "بيور لايف"}},
	{"Baraka", []string{"baraka", "بركة", "باراكا"}},
	{"Elano", []string{"elano", "إيلانو", "ايلانو"}},
	{"Puvana", []string{"puvana", "بوفانا"}},
	{"Aquafina", []string{"aquafina", "أكوافينا", "اكوافينا"}},
	{"ISIS", []string{"isis water", "isis mineral", "ايزيس", "إيزيس"}},
	{"Hayat", []string{"hayat", "حياة"}},
	{"Safi", []string{"safi", "صافي"}},
	{"Aqua Delta", []string{"aqua delta", "aquadelta", "اكوا دلتا", "أكوا دلتا"}},
	{"evian", []string{"evian", "ايفيان", "إيفيان"}},
	{"Dasani", []string{"dasani", "داساني"}},
	{"FLO", []string{"flo water", "flo mineral", "فلو"}},
}

// StandardSizes is the canonical size vocabulary and the row order of the
// price pivot. Not alphabetical.
var StandardSizes = []string{
	"0.33L", "0.6L", "1L", "1.5L", "6L", "0.24L Sparkling", "5 Gallons",
}

// SizeAlias maps one Arabic size phrase to its standardized label.
type SizeAlias struct {
	Alias string
	Size  string
}

var SizeAliases = []SizeAlias{
	{"0.33 لتر", "0.33L"},
	{"0.6 لتر", "0.6L"},
	{"1 لتر", "1L"},
	{"1.5 لتر", "1.5L"},
	{"6 لتر", "6L"},
	{"0.24 لتر فوار", "0.24L Sparkling"},
	{"5 جالون", "5 Gallons"},
}

// NPLPriceThresholds are the per-size price ceilings (EGP) behind the
// availability rule. A listing priced above its size's ceiling is flagged
// Not Available; sizes without a ceiling default to Available.
var NPLPriceThresholds = map[string]float64{
	"0.33L":          100,
	"0.6L":           100,
	"1L":             100,
	"1.5L":           100,
	"6L":             200,
	"0.24L Sparkling": 300,
	"5 Gallons":      100,
}
