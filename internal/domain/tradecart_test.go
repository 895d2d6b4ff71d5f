package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tradebinder/internal/domain"
)

func cartCard(id int64, value string) domain.Card {
	v, _ := decimal.NewFromString(value)
	return domain.Card{ID: id, CardName: "Card", SetName: "Set", TradeValue: v}
}

// recompute sums the snapshot values from scratch; the incrementally
// maintained total must always equal it.
func recompute(t *domain.TradeCart) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries() {
		sum = sum.Add(e.TradeValue)
	}
	return sum
}

func TestAddIsIdempotent(t *testing.T) {
	var cart domain.TradeCart

	assert.True(t, cart.Add(cartCard(1, "150.00")))
	once := cart.Total()

	assert.False(t, cart.Add(cartCard(1, "150.00")))
	assert.Equal(t, 1, cart.Len())
	assert.True(t, once.Equal(cart.Total()))
}

func TestRemoveRestoresTotalExactly(t *testing.T) {
	var cart domain.TradeCart
	cart.Add(cartCard(1, "0.10"))
	cart.Add(cartCard(2, "0.20"))
	before := cart.Total()

	cart.Add(cartCard(3, "0.30"))
	cart.Remove(3)

	// exact, no drift
	assert.True(t, before.Equal(cart.Total()), "want %s got %s", before, cart.Total())
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("0.30")))
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	var cart domain.TradeCart
	cart.Add(cartCard(1, "10"))

	assert.False(t, cart.Remove(99))
	assert.Equal(t, 1, cart.Len())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(10)))
}

func TestIncrementalTotalMatchesRecomputation(t *testing.T) {
	var cart domain.TradeCart
	values := []string{"12.37", "0.01", "99.99", "3.50", "150.00"}
	for i, v := range values {
		cart.Add(cartCard(int64(i+1), v))
		assert.True(t, cart.Total().Equal(recompute(&cart)))
	}
	cart.Remove(3)
	cart.Remove(1)
	assert.True(t, cart.Total().Equal(recompute(&cart)))
	assert.Equal(t, 3, cart.Len())
}

func TestEntriesSnapshotValueAtAddTime(t *testing.T) {
	var cart domain.TradeCart
	c := cartCard(1, "50")
	cart.Add(c)

	// later mutation of the record does not reach the cart entry
	c.TradeValue = decimal.NewFromInt(500)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(50)))
}
