package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Enumerated card attributes. The repository schema enforces the same sets.
var (
	Conditions = []string{"Near Mint", "Lightly Played", "Moderately Played", "Heavily Played", "Damaged"}
	Languages  = []string{"English", "Japanese", "Spanish", "German", "French"}
)

// Card is a single listed trading card. Images are stored as an ordered JSON
// array of image-store references (front first, optionally back).
type Card struct {
	ID          int64               `db:"id" json:"id"`
	OwnerID     string              `db:"owner_id" json:"ownerId"`
	CardName    string              `db:"card_name" json:"cardName"`
	SetName     string              `db:"set_name" json:"setName"`
	Expansion   string              `db:"expansion" json:"expansion"`
	CardNumber  string              `db:"card_number" json:"cardNumber,omitempty"`
	Condition   string              `db:"condition" json:"condition"`
	Foil        bool                `db:"foil" json:"foil"`
	Language    string              `db:"language" json:"language"`
	TradeValue  decimal.Decimal     `db:"trade_value" json:"tradeValue"`
	MarketValue decimal.NullDecimal `db:"market_value" json:"marketValue"`
	ImagesJSON  string              `db:"images_json" json:"-"`
	Tradeable   bool                `db:"tradeable" json:"tradeable"`
	CreatedAt   string              `db:"created_at" json:"createdAt"` // RFC3339 UTC

	ImageRefs []string `db:"-" json:"imageRefs"`
	ImageURLs []string `db:"-" json:"imageUrls,omitempty"`
}

// MarketOrZero treats an absent market value as 0 for filtering and sorting.
func (c *Card) MarketOrZero() decimal.Decimal {
	if c.MarketValue.Valid {
		return c.MarketValue.Decimal
	}
	return decimal.Zero
}

func (c *Card) EncodeImages() error {
	b, err := json.Marshal(c.ImageRefs)
	if err != nil {
		return err
	}
	c.ImagesJSON = string(b)
	return nil
}

func (c *Card) DecodeImages() error {
	if c.ImagesJSON == "" {
		c.ImageRefs = nil
		return nil
	}
	return json.Unmarshal([]byte(c.ImagesJSON), &c.ImageRefs)
}

func ValidCondition(s string) bool { return contains(Conditions, s) }
func ValidLanguage(s string) bool  { return contains(Languages, s) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
