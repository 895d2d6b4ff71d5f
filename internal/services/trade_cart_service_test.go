package services_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"tradebinder/internal/domain"
	"tradebinder/internal/repos"
	"tradebinder/internal/services"
)

func seedCard(t *testing.T, cards *repos.CardRepo, name, value string) int64 {
	t.Helper()
	v, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatal(err)
	}
	c := domain.Card{
		OwnerID: "u-misty", CardName: name, SetName: "Base Set",
		Condition: "Near Mint", Language: "English",
		TradeValue: v, Tradeable: true, CreatedAt: "2024-01-01T00:00:00Z",
	}
	if err := cards.Insert(&c); err != nil {
		t.Fatal(err)
	}
	return c.ID
}

func TestTradeCartSessionFlow(t *testing.T) {
	db := memdb(t)
	cards := repos.NewCardRepo(db)
	svc := services.NewTradeCartService(cards)

	id1 := seedCard(t, cards, "Charizard", "150.00")
	id2 := seedCard(t, cards, "Blastoise", "60.50")

	cv, err := svc.Add("sid-1", id1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 1 || !cv.Total.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("bad cart after first add: %+v", cv)
	}

	// duplicate add is a no-op
	cv, err = svc.Add("sid-1", id1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 1 || !cv.Total.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("duplicate add changed cart: %+v", cv)
	}

	cv, err = svc.Add("sid-1", id2)
	if err != nil {
		t.Fatal(err)
	}
	if !cv.Total.Equal(decimal.RequireFromString("210.50")) {
		t.Fatalf("want 210.50, got %s", cv.Total)
	}

	cv = svc.Remove("sid-1", id2)
	if !cv.Total.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("remove did not restore total: %s", cv.Total)
	}

	// removing an id that is not in the cart changes nothing
	cv = svc.Remove("sid-1", 424242)
	if len(cv.Items) != 1 {
		t.Fatalf("no-op remove changed cart: %+v", cv)
	}
}

func TestTradeCartsAreSessionScoped(t *testing.T) {
	db := memdb(t)
	cards := repos.NewCardRepo(db)
	svc := services.NewTradeCartService(cards)

	id := seedCard(t, cards, "Pikachu", "5.00")
	if _, err := svc.Add("sid-a", id); err != nil {
		t.Fatal(err)
	}

	other := svc.View("sid-b")
	if len(other.Items) != 0 || !other.Total.IsZero() {
		t.Fatalf("cart leaked across sessions: %+v", other)
	}
}

func TestTradeCartAddUnknownCard(t *testing.T) {
	db := memdb(t)
	svc := services.NewTradeCartService(repos.NewCardRepo(db))

	if _, err := svc.Add("sid-1", 777); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

// The cart holds a value snapshot; later record updates don't reach it.
func TestTradeCartSnapshotsValueAtAdd(t *testing.T) {
	db := memdb(t)
	cards := repos.NewCardRepo(db)
	svc := services.NewTradeCartService(cards)

	id := seedCard(t, cards, "Mewtwo", "80.00")
	if _, err := svc.Add("sid-1", id); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE cards SET trade_value = 999 WHERE id = ?`, id); err != nil {
		t.Fatal(err)
	}

	cv := svc.View("sid-1")
	if !cv.Total.Equal(decimal.RequireFromString("80.00")) {
		t.Fatalf("snapshot not honored: %s", cv.Total)
	}
}
