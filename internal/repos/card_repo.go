package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"tradebinder/internal/domain"
)

type CardRepo struct{ db *sqlx.DB }

func NewCardRepo(db *sqlx.DB) *CardRepo { return &CardRepo{db: db} }

const cardCols = `
  id, owner_id, card_name, set_name, expansion, card_number, condition,
  foil, language, trade_value, market_value, images_json, tradeable, created_at`

// Insert persists a new card and assigns its store-unique id.
func (r *CardRepo) Insert(c *domain.Card) error {
	if err := c.EncodeImages(); err != nil {
		return err
	}
	res, err := r.db.Exec(`
	  INSERT INTO cards(owner_id, card_name, set_name, expansion, card_number,
	    condition, foil, language, trade_value, market_value, images_json,
	    tradeable, created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, c.OwnerID, c.CardName, c.SetName, c.Expansion, c.CardNumber,
		c.Condition, c.Foil, c.Language, c.TradeValue, c.MarketValue,
		c.ImagesJSON, c.Tradeable, c.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *CardRepo) Get(id int64) (domain.Card, error) {
	var c domain.Card
	err := r.db.Get(&c, `SELECT `+cardCols+` FROM cards WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Card{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Card{}, err
	}
	return c, c.DecodeImages()
}

// ListByOwner returns all of one owner's cards in no implied order; ordering
// is the query engine's job.
func (r *CardRepo) ListByOwner(ownerID string) ([]domain.Card, error) {
	var out []domain.Card
	err := r.db.Select(&out, `SELECT `+cardCols+` FROM cards WHERE owner_id = ?`, ownerID)
	if err != nil {
		return nil, err
	}
	return decodeAll(out)
}

func (r *CardRepo) ListAll() ([]domain.Card, error) {
	var out []domain.Card
	err := r.db.Select(&out, `SELECT `+cardCols+` FROM cards`)
	if err != nil {
		return nil, err
	}
	return decodeAll(out)
}

// SetTradeable atomically updates the single tradeable field and returns the
// post-update record, or domain.ErrNotFound for an unknown id.
func (r *CardRepo) SetTradeable(id int64, v bool) (domain.Card, error) {
	res, err := r.db.Exec(`UPDATE cards SET tradeable = ? WHERE id = ?`, v, id)
	if err != nil {
		return domain.Card{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Card{}, domain.ErrNotFound
	}
	return r.Get(id)
}

// Toggle flips tradeable in a single UPDATE so concurrent toggles on the same
// id never interleave a stale read-modify-write.
func (r *CardRepo) Toggle(id int64) (domain.Card, error) {
	res, err := r.db.Exec(`UPDATE cards SET tradeable = NOT tradeable WHERE id = ?`, id)
	if err != nil {
		return domain.Card{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Card{}, domain.ErrNotFound
	}
	return r.Get(id)
}

func (r *CardRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM cards`)
	return n, err
}

func decodeAll(cards []domain.Card) ([]domain.Card, error) {
	for i := range cards {
		if err := cards[i].DecodeImages(); err != nil {
			return nil, err
		}
	}
	return cards, nil
}
