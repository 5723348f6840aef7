package insights

import (
	"math"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownMerchant is the canonical name for transactions whose feed omitted
// or blanked the merchant.
const UnknownMerchant = "unknown"

var (
	// Legal and payment-processor noise stripped from merchant names.
	// Longer tokens come first so they win over their own prefixes.
	suffixPattern = regexp.MustCompile(`\b(direct dep|dir dep|company|payroll|payment|deposit|corp|pty|plc|ppd|ach|pmt|inc|llc|ltd|des|dep|dd|co)\b`)
	nonAlnum      = regexp.MustCompile(`[^a-z0-9 ]+`)
	multiSpace    = regexp.MustCompile(`\s+`)
)

// NormalizeMerchant canonicalizes a free-text merchant name: lower-case,
// punctuation strip, suffix-token removal on word boundaries, whitespace
// collapse. The result is stable under re-normalization.
func NormalizeMerchant(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = nonAlnum.ReplaceAllString(s, "")
	s = suffixPattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
	if s == "" {
		return UnknownMerchant
	}
	return s
}

// similarityRatio is a normalized edit-distance ratio in [0,1]: 1 means the
// names are identical after normalization.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// amountParity reports whether two amounts are within tolerance of each
// other, relative to the larger magnitude. Two zero amounts are in parity.
func amountParity(a, b, tolerance float64) bool {
	a, b = math.Abs(a), math.Abs(b)
	larger := math.Max(a, b)
	if larger == 0 {
		return true
	}
	return math.Abs(a-b)/larger <= tolerance
}

// Similar reports whether two merchant names plausibly refer to the same
// counterparty: a strong name match stands alone, a weaker one needs the
// typical amounts to agree. Symmetric in its arguments.
func (c Config) Similar(nameA string, amountA float64, nameB string, amountB float64) bool {
	ratio := similarityRatio(NormalizeMerchant(nameA), NormalizeMerchant(nameB))
	if ratio >= c.SimilarityStrong {
		return true
	}
	return ratio >= c.SimilarityWeak && amountParity(amountA, amountB, c.AmountTolerance)
}

var titleCaser = cases.Title(language.English)

// HumanizeCategory turns a feed category token like "food_and_drink" into
// display text ("Food And Drink").
func HumanizeCategory(category string) string {
	if category == "" {
		return ""
	}
	s := strings.ReplaceAll(category, "_", " ")
	return titleCaser.String(strings.ToLower(s))
}
