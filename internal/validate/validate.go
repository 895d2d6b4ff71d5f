package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tradebinder/internal/domain"
)

var (
	reOwner = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
)

// OwnerID validates an opaque owner identifier.
func OwnerID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reOwner.MatchString(s)
}

// CardID parses a numeric card id from a route parameter.
func CardID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// CardName trims and bounds the required card name.
func CardName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

func Condition(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, domain.ValidCondition(s)
}

func Language(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, domain.ValidLanguage(s)
}

// TradeValue parses a user-declared value. Absence is allowed and treated as
// zero; anything present must parse to a non-negative decimal.
func TradeValue(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}
