// Package query is the pure filter/sort/search engine over in-memory card
// records. Run never mutates its input and always produces the same output
// for the same input, so it is testable without a store.
package query

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"tradebinder/internal/domain"
)

// Range is one selectable market-value band. Both bounds are inclusive, so a
// value landing exactly on a shared boundary matches both adjoining ranges.
// Max is nil for the open-ended top band.
type Range struct {
	Label string
	Min   decimal.Decimal
	Max   *decimal.Decimal
}

var PriceRanges = []Range{
	{Label: "$10 - $25", Min: dec(10), Max: decp(25)},
	{Label: "$25 - $50", Min: dec(25), Max: decp(50)},
	{Label: "$50 - $75", Min: dec(50), Max: decp(75)},
	{Label: "$75 - $100", Min: dec(75), Max: decp(100)},
	{Label: "$100 - $200", Min: dec(100), Max: decp(200)},
	{Label: "$200 - $300", Min: dec(200), Max: decp(300)},
	{Label: "$300+", Min: dec(300)},
}

func dec(n int64) decimal.Decimal   { return decimal.NewFromInt(n) }
func decp(n int64) *decimal.Decimal { d := decimal.NewFromInt(n); return &d }

// Sort keys. Unknown keys fall back to SortRecent.
const (
	SortRecent    = "recent"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Params are the active filters and sort for one query. A filter with no
// selected values is inactive and passes every record.
type Params struct {
	PriceRanges []string // Range labels
	Sets        []string
	Conditions  []string
	Search      string
	Sort        string
}

// Run filters conjunctively across categories, then sorts stably so records
// with equal keys keep their original repository order.
func Run(cards []domain.Card, p Params) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if p.matches(&c) {
			out = append(out, c)
		}
	}
	sortCards(out, p.Sort)
	return out
}

func (p *Params) matches(c *domain.Card) bool {
	if len(p.PriceRanges) > 0 && !priceInRanges(c.MarketOrZero(), p.PriceRanges) {
		return false
	}
	if len(p.Sets) > 0 && !inSets(c, p.Sets) {
		return false
	}
	if len(p.Conditions) > 0 && !containsStr(p.Conditions, c.Condition) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(p.Search))
	if q != "" && !searchMatch(c, q) {
		return false
	}
	return true
}

// priceInRanges is disjunctive across the selected range labels.
func priceInRanges(v decimal.Decimal, selected []string) bool {
	for _, label := range selected {
		for _, r := range PriceRanges {
			if r.Label != label {
				continue
			}
			if v.Cmp(r.Min) >= 0 && (r.Max == nil || v.Cmp(*r.Max) <= 0) {
				return true
			}
		}
	}
	return false
}

// inSets matches the record's set name or its expansion alias.
func inSets(c *domain.Card, sets []string) bool {
	return containsStr(sets, c.SetName) || containsStr(sets, c.Expansion)
}

func searchMatch(c *domain.Card, q string) bool {
	return strings.Contains(strings.ToLower(c.CardName), q) ||
		strings.Contains(strings.ToLower(c.SetName), q) ||
		strings.Contains(strings.ToLower(c.Expansion), q)
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// sortCards orders by exactly one key. CreatedAt is RFC3339 UTC, so string
// order is chronological.
func sortCards(cards []domain.Card, key string) {
	switch key {
	case SortOldest:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].CreatedAt < cards[j].CreatedAt
		})
	case SortPriceLow:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].MarketOrZero().Cmp(cards[j].MarketOrZero()) < 0
		})
	case SortPriceHigh:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].MarketOrZero().Cmp(cards[j].MarketOrZero()) > 0
		})
	case SortRecent:
		fallthrough
	default:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].CreatedAt > cards[j].CreatedAt
		})
	}
}
