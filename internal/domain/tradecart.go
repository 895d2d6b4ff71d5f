package domain

import "github.com/shopspring/decimal"

// TradeCartEntry references a listed card by id. TradeValue is a snapshot
// taken at add time, not a live view of the record.
type TradeCartEntry struct {
	CardID     int64           `json:"cardId"`
	CardName   string          `json:"cardName"`
	SetName    string          `json:"setName"`
	TradeValue decimal.Decimal `json:"tradeValue"`
}

// TradeCart is a session-local working set of cards. Membership is keyed by
// card id and the running total is maintained incrementally on add/remove.
type TradeCart struct {
	entries []TradeCartEntry
	total   decimal.Decimal
}

// Add inserts a snapshot entry for the card. Adding an id already present is
// a no-op; it reports whether the cart changed.
func (t *TradeCart) Add(c Card) bool {
	for _, e := range t.entries {
		if e.CardID == c.ID {
			return false
		}
	}
	t.entries = append(t.entries, TradeCartEntry{
		CardID:     c.ID,
		CardName:   c.CardName,
		SetName:    c.SetName,
		TradeValue: c.TradeValue,
	})
	t.total = t.total.Add(c.TradeValue)
	return true
}

// Remove drops the entry for cardID if present; it reports whether the cart
// changed.
func (t *TradeCart) Remove(cardID int64) bool {
	for i, e := range t.entries {
		if e.CardID == cardID {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			t.total = t.total.Sub(e.TradeValue)
			return true
		}
	}
	return false
}

// Total returns the running sum of snapshot trade values.
func (t *TradeCart) Total() decimal.Decimal { return t.total }

func (t *TradeCart) Len() int { return len(t.entries) }

// Entries returns a copy in insertion order.
func (t *TradeCart) Entries() []TradeCartEntry {
	out := make([]TradeCartEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
